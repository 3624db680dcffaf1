package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"caseboard/internal/adapters/email"
	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	clientStore "caseboard/internal/adapters/storage/client"
	interventionStore "caseboard/internal/adapters/storage/intervention"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/intervention"
)

// ScheduleInterventionInput books a one-on-one session with a client.
// NotifyEmail, when set, receives a notification about the session.
type ScheduleInterventionInput struct {
	ClientID     string
	Kind         string
	ScheduledFor time.Time
	Notes        string
	NotifyEmail  string
	Actor        string
	IPAddress    string
}

// ScheduleInterventionDeps declares the collaborators needed to schedule
// an intervention.
type ScheduleInterventionDeps struct {
	ClientStore       clientStore.Store
	InterventionStore interventionStore.Store
	ActivityLogStore  activitylogStore.Store
	EmailSender       email.Sender
	Now               func() time.Time
	GenerateID        func() string
}

// ScheduleInterventionResult carries the created intervention and whether
// the notification email was accepted.
type ScheduleInterventionResult struct {
	Intervention intervention.Intervention
	EmailSent    bool
}

// ExecuteScheduleIntervention validates and books the session. The email
// notification is best-effort: a provider failure is logged, not returned,
// since the session itself is already booked.
// PRE: input.ClientID names an existing client
// POST: intervention persisted in scheduled status; action logged
func ExecuteScheduleIntervention(ctx context.Context, input ScheduleInterventionInput, deps ScheduleInterventionDeps) (ScheduleInterventionResult, error) {
	cl, err := deps.ClientStore.GetByID(ctx, input.ClientID)
	if err != nil {
		return ScheduleInterventionResult{}, fmt.Errorf("load client: %w", err)
	}

	iv := intervention.Intervention{
		ID:           deps.GenerateID(),
		ClientID:     input.ClientID,
		Kind:         input.Kind,
		Status:       intervention.StatusScheduled,
		ScheduledFor: input.ScheduledFor,
		Notes:        input.Notes,
		CreatedBy:    input.Actor,
		CreatedAt:    deps.Now(),
	}
	if err := iv.Validate(); err != nil {
		return ScheduleInterventionResult{}, err
	}

	if err := deps.InterventionStore.Save(ctx, iv); err != nil {
		return ScheduleInterventionResult{}, fmt.Errorf("save intervention: %w", err)
	}

	result := ScheduleInterventionResult{Intervention: iv}
	if input.NotifyEmail != "" && deps.EmailSender != nil {
		req := email.SendRequest{
			To:      []string{input.NotifyEmail},
			Subject: fmt.Sprintf("Intervention scheduled: %s", cl.Name),
			HTML: fmt.Sprintf("<p>A %s session for %s is scheduled on %s.</p>",
				iv.Kind, cl.Name, iv.ScheduledFor.Format("Monday, 2 January 2006 at 3:04PM")),
		}
		if _, err := deps.EmailSender.Send(ctx, req); err != nil {
			slog.Error("intervention_email_failed", "error", err, "intervention_id", iv.ID)
		} else {
			result.EmailSent = true
		}
	}

	entry := activitylog.Entry{
		ID:         deps.GenerateID(),
		Actor:      input.Actor,
		Action:     activitylog.ActionScheduleIntervention,
		Details:    fmt.Sprintf("scheduled %s for %s on %s", iv.Kind, cl.Name, iv.ScheduledFor.Format("2006-01-02 15:04")),
		Target:     cl.ID,
		IPAddress:  input.IPAddress,
		OccurredAt: deps.Now(),
	}
	if err := deps.ActivityLogStore.Save(ctx, entry); err != nil {
		slog.Error("activity_log_save_failed", "error", err, "action", entry.Action)
	}

	slog.Info("intervention_scheduled", "intervention_id", iv.ID, "client_id", cl.ID, "kind", iv.Kind)
	return result, nil
}
