package note_test

import (
	"strings"
	"testing"
	"time"

	"caseboard/internal/domain/note"
)

// TestNote_Validate tests validation of Note.
func TestNote_Validate(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		n       note.Note
		wantErr bool
	}{
		{
			name:    "valid note",
			n:       note.Note{ID: "1", ClientID: "c-1", Author: "Case Worker A", Body: "Participated **actively** in group.", CreatedAt: now},
			wantErr: false,
		},
		{
			name:    "missing client",
			n:       note.Note{ID: "2", Author: "Case Worker A", Body: "x", CreatedAt: now},
			wantErr: true,
		},
		{
			name:    "empty author",
			n:       note.Note{ID: "3", ClientID: "c-1", Author: " ", Body: "x", CreatedAt: now},
			wantErr: true,
		},
		{
			name:    "empty body",
			n:       note.Note{ID: "4", ClientID: "c-1", Author: "Case Worker A", Body: "   ", CreatedAt: now},
			wantErr: true,
		},
		{
			name:    "body too long",
			n:       note.Note{ID: "5", ClientID: "c-1", Author: "Case Worker A", Body: strings.Repeat("x", 10001), CreatedAt: now},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Note.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
