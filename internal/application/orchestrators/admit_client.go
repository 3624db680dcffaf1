package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	clientStore "caseboard/internal/adapters/storage/client"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/client"
)

// AdmitClientInput is a request to register a new resident application.
type AdmitClientInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	Guardian  string
	Actor     string
	IPAddress string
}

// AdmitClientDeps declares the collaborators needed to admit a client.
type AdmitClientDeps struct {
	ClientStore      clientStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// AdmitClientResult carries the newly created client.
type AdmitClientResult struct {
	Client client.Client
}

// ExecuteAdmitClient creates a new client in pending status awaiting
// staff approval.
// PRE: input.Actor is non-empty
// POST: client persisted with status pending; admission logged
func ExecuteAdmitClient(ctx context.Context, input AdmitClientInput, deps AdmitClientDeps) (AdmitClientResult, error) {
	today := deps.Now().Format("2006-01-02")
	cl := client.Client{
		ID:         deps.GenerateID(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		Guardian:   input.Guardian,
		Status:     client.StatusPending,
		AdmittedAt: today,
		UpdatedAt:  today,
	}
	if err := cl.Validate(); err != nil {
		return AdmitClientResult{}, err
	}

	if err := deps.ClientStore.Save(ctx, cl); err != nil {
		return AdmitClientResult{}, fmt.Errorf("save client: %w", err)
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionAdmitClient,
		Details:    fmt.Sprintf("admitted %s", cl.Name),
		Target:     cl.ID,
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("client_admitted", "client_id", cl.ID, "actor", input.Actor)
	return AdmitClientResult{Client: cl}, nil
}
