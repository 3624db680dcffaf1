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

// TransitionClientInput moves a client through the residency lifecycle.
// Reason is required when flagging; it is recorded in the log otherwise.
type TransitionClientInput struct {
	ClientID  string
	ToStatus  string
	Reason    string
	Actor     string
	IPAddress string
}

// TransitionClientDeps declares the collaborators needed for a transition.
type TransitionClientDeps struct {
	ClientStore      clientStore.Store
	ActivityLogStore activitylogStore.Store
	Now              func() time.Time
	GenerateID       func() string
}

// TransitionClientResult carries the updated client.
type TransitionClientResult struct {
	Client client.Client
}

// transitionActions maps a target status to its well-known log action.
var transitionActions = map[string]string{
	client.StatusActive:           activitylog.ActionApproveClient,
	client.StatusRejected:         activitylog.ActionRejectClient,
	client.StatusFlagged:          activitylog.ActionFlagClient,
	client.StatusAftercarePending: activitylog.ActionSendToAftercare,
	client.StatusAftercare:        activitylog.ActionApproveAftercare,
	client.StatusCompleted:        activitylog.ActionCompleteTreatment,
	client.StatusArchived:         activitylog.ActionArchiveClient,
}

// ExecuteTransitionClient applies a lifecycle transition and logs it.
// Flagging uses Client.Flag so the reason is captured; a flagged client
// moving back to active is logged as an unflag.
// PRE: input.ClientID names an existing client
// POST: client persisted in the new status; transition logged
func ExecuteTransitionClient(ctx context.Context, input TransitionClientInput, deps TransitionClientDeps) (TransitionClientResult, error) {
	cl, err := deps.ClientStore.GetByID(ctx, input.ClientID)
	if err != nil {
		return TransitionClientResult{}, fmt.Errorf("load client: %w", err)
	}

	wasFlagged := cl.Status == client.StatusFlagged
	if input.ToStatus == client.StatusFlagged {
		if err := cl.Flag(input.Reason); err != nil {
			return TransitionClientResult{}, err
		}
	} else if err := cl.Transition(input.ToStatus); err != nil {
		return TransitionClientResult{}, err
	}
	cl.UpdatedAt = deps.Now().Format("2006-01-02")

	if err := deps.ClientStore.Save(ctx, cl); err != nil {
		return TransitionClientResult{}, fmt.Errorf("save client: %w", err)
	}

	action := transitionActions[input.ToStatus]
	if wasFlagged && input.ToStatus == client.StatusActive {
		action = activitylog.ActionUnflagClient
	}
	details := fmt.Sprintf("%s -> %s", cl.Name, input.ToStatus)
	if input.Reason != "" {
		details += ": " + input.Reason
	}
	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     action,
		Details:    details,
		Target:     cl.ID,
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("client_transitioned", "client_id", cl.ID, "to", input.ToStatus, "actor", input.Actor)
	return TransitionClientResult{Client: cl}, nil
}
