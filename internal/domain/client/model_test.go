package client_test

import (
	"errors"
	"strings"
	"testing"

	"caseboard/internal/domain/client"
)

// TestClient_Validate tests validation of Client.
func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cl      client.Client
		wantErr bool
	}{
		{
			name:    "valid active client",
			cl:      client.Client{ID: "1", Name: "Juan Dela Cruz", Status: client.StatusActive},
			wantErr: false,
		},
		{
			name:    "valid flagged client with reason",
			cl:      client.Client{ID: "2", Name: "Pedro Santos", Status: client.StatusFlagged, FlagReason: "missed curfew"},
			wantErr: false,
		},
		{
			name:    "empty name",
			cl:      client.Client{ID: "3", Name: "  ", Status: client.StatusActive},
			wantErr: true,
		},
		{
			name:    "name too long",
			cl:      client.Client{ID: "4", Name: strings.Repeat("x", 101), Status: client.StatusActive},
			wantErr: true,
		},
		{
			name:    "invalid status",
			cl:      client.Client{ID: "5", Name: "Ana Reyes", Status: "vacationing"},
			wantErr: true,
		},
		{
			name:    "flagged without reason",
			cl:      client.Client{ID: "6", Name: "Ana Reyes", Status: client.StatusFlagged},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cl.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Client.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestClient_Transition tests the residency lifecycle.
func TestClient_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"approve pending", client.StatusPending, client.StatusActive, nil},
		{"reject pending", client.StatusPending, client.StatusRejected, nil},
		{"propose aftercare", client.StatusActive, client.StatusAftercarePending, nil},
		{"approve aftercare", client.StatusAftercarePending, client.StatusAftercare, nil},
		{"reject aftercare back to active", client.StatusAftercarePending, client.StatusActive, nil},
		{"complete treatment", client.StatusActive, client.StatusCompleted, nil},
		{"archive from anywhere", client.StatusRejected, client.StatusArchived, nil},
		{"pending cannot complete", client.StatusPending, client.StatusCompleted, client.ErrInvalidTransition},
		{"completed cannot reactivate", client.StatusCompleted, client.StatusActive, client.ErrInvalidTransition},
		{"archive twice", client.StatusArchived, client.StatusArchived, client.ErrInvalidTransition},
		{"unknown target status", client.StatusActive, "paroled", client.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := client.Client{ID: "1", Name: "Juan", Status: tt.from}
			err := cl.Transition(tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transition(%s -> %s) error = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
			if err == nil && cl.Status != tt.to {
				t.Errorf("status = %s, want %s", cl.Status, tt.to)
			}
		})
	}
}

// TestClient_Flag tests flagging and unflagging.
func TestClient_Flag(t *testing.T) {
	cl := client.Client{ID: "1", Name: "Juan", Status: client.StatusActive}

	if err := cl.Flag("missed curfew"); err != nil {
		t.Fatalf("Flag() error = %v", err)
	}
	if cl.Status != client.StatusFlagged || cl.FlagReason != "missed curfew" {
		t.Errorf("after Flag(): %+v", cl)
	}

	if err := cl.Transition(client.StatusActive); err != nil {
		t.Fatalf("Transition(active) error = %v", err)
	}
	if cl.FlagReason != "" {
		t.Errorf("FlagReason = %q, want cleared on unflag", cl.FlagReason)
	}

	if err := cl.Flag(""); err == nil {
		t.Error("Flag(\"\") expected error, got nil")
	}
}

// TestClient_IsInResidence tests the residence predicate.
func TestClient_IsInResidence(t *testing.T) {
	for status, want := range map[string]bool{
		client.StatusActive:    true,
		client.StatusFlagged:   true,
		client.StatusPending:   false,
		client.StatusAftercare: false,
		client.StatusArchived:  false,
	} {
		cl := client.Client{Status: status}
		if got := cl.IsInResidence(); got != want {
			t.Errorf("IsInResidence() with status %s = %v, want %v", status, got, want)
		}
	}
}
