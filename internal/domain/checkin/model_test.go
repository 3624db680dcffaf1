package checkin_test

import (
	"testing"
	"time"

	"caseboard/internal/domain/checkin"
)

// TestCheckIn_Validate tests validation of CheckIn.
func TestCheckIn_Validate(t *testing.T) {
	now := time.Date(2026, 8, 30, 7, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		ci      checkin.CheckIn
		wantErr bool
	}{
		{
			name:    "valid check-in",
			ci:      checkin.CheckIn{ID: "1", ClientID: "c-1", Mood: 4, CheckedInAt: now},
			wantErr: false,
		},
		{
			name:    "missing client",
			ci:      checkin.CheckIn{ID: "2", Mood: 3, CheckedInAt: now},
			wantErr: true,
		},
		{
			name:    "zero time",
			ci:      checkin.CheckIn{ID: "3", ClientID: "c-1", Mood: 3},
			wantErr: true,
		},
		{
			name:    "mood below scale",
			ci:      checkin.CheckIn{ID: "4", ClientID: "c-1", Mood: 0, CheckedInAt: now},
			wantErr: true,
		},
		{
			name:    "mood above scale",
			ci:      checkin.CheckIn{ID: "5", ClientID: "c-1", Mood: 6, CheckedInAt: now},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ci.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckIn.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckIn_Day tests the calendar-day key.
func TestCheckIn_Day(t *testing.T) {
	ci := checkin.CheckIn{CheckedInAt: time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)}
	if got := ci.Day(); got != "2026-08-30" {
		t.Errorf("Day() = %q, want 2026-08-30", got)
	}
}
