// Package projections contains read-side queries that assemble view data
// from one or more stores. Each projection declares the minimal store
// surface it reads from, so tests fake only what the query touches.
package projections

import (
	"context"
	"fmt"
	"time"

	"caseboard/internal/domain/checkin"
	"caseboard/internal/domain/client"
	"caseboard/internal/domain/intervention"
	grid "caseboard/internal/domain/schedulegrid"
)

// DashboardClientReader is the client surface the dashboard reads.
type DashboardClientReader interface {
	ListByStatus(ctx context.Context, status string) ([]client.Client, error)
}

// DashboardCheckInReader is the check-in surface the dashboard reads.
type DashboardCheckInReader interface {
	ListByDay(ctx context.Context, day string) ([]checkin.CheckIn, error)
}

// DashboardInterventionReader is the intervention surface the dashboard reads.
type DashboardInterventionReader interface {
	ListByStatus(ctx context.Context, status string) ([]intervention.Intervention, error)
}

// DashboardScheduleReader is the schedule surface the dashboard reads.
type DashboardScheduleReader interface {
	ListRecords(ctx context.Context) ([]grid.Record, error)
}

// GetDashboardDeps declares the stores the dashboard projection reads.
type GetDashboardDeps struct {
	ClientStore       DashboardClientReader
	CheckInStore      DashboardCheckInReader
	InterventionStore DashboardInterventionReader
	ScheduleStore     DashboardScheduleReader
	Now               func() time.Time
}

// CurrentActivity is one day's activity in the schedule row happening now.
type CurrentActivity struct {
	Day      string `json:"day"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// DashboardView is the aggregate state shown on the landing page.
type DashboardView struct {
	InResidence       int               `json:"inResidence"`
	PendingAdmissions int               `json:"pendingAdmissions"`
	Flagged           int               `json:"flagged"`
	AftercarePending  int               `json:"aftercarePending"`
	CheckedInToday    int               `json:"checkedInToday"`
	AverageMoodToday  float64           `json:"averageMoodToday"`
	ScheduledSessions int               `json:"scheduledSessions"`
	NextSession       *SessionSummary   `json:"nextSession,omitempty"`
	CurrentTimeLabel  string            `json:"currentTimeLabel"`
	CurrentActivities []CurrentActivity `json:"currentActivities"`
}

// SessionSummary is the next upcoming intervention, if any.
type SessionSummary struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	Kind         string    `json:"kind"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

// GetDashboard assembles the landing-page view: roster counts, today's
// check-in coverage, upcoming sessions, and what is happening on the
// week schedule right now.
// PRE: all deps are non-nil
// POST: returns a fully populated view; a schedule row outside house
// hours leaves CurrentTimeLabel empty
func GetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardView, error) {
	var view DashboardView

	counts := map[string]*int{
		client.StatusPending:          &view.PendingAdmissions,
		client.StatusFlagged:          &view.Flagged,
		client.StatusAftercarePending: &view.AftercarePending,
	}
	for status, dst := range counts {
		list, err := deps.ClientStore.ListByStatus(ctx, status)
		if err != nil {
			return DashboardView{}, fmt.Errorf("list %s clients: %w", status, err)
		}
		*dst = len(list)
	}
	active, err := deps.ClientStore.ListByStatus(ctx, client.StatusActive)
	if err != nil {
		return DashboardView{}, fmt.Errorf("list active clients: %w", err)
	}
	view.InResidence = len(active) + view.Flagged

	now := deps.Now()
	today, err := deps.CheckInStore.ListByDay(ctx, now.Format("2006-01-02"))
	if err != nil {
		return DashboardView{}, fmt.Errorf("list today's check-ins: %w", err)
	}
	view.CheckedInToday = len(today)
	if len(today) > 0 {
		sum := 0
		for _, ci := range today {
			sum += ci.Mood
		}
		view.AverageMoodToday = float64(sum) / float64(len(today))
	}

	scheduled, err := deps.InterventionStore.ListByStatus(ctx, intervention.StatusScheduled)
	if err != nil {
		return DashboardView{}, fmt.Errorf("list scheduled interventions: %w", err)
	}
	view.ScheduledSessions = len(scheduled)
	for _, iv := range scheduled {
		if iv.ScheduledFor.Before(now) {
			continue
		}
		if view.NextSession == nil || iv.ScheduledFor.Before(view.NextSession.ScheduledFor) {
			view.NextSession = &SessionSummary{
				ID:           iv.ID,
				ClientID:     iv.ClientID,
				Kind:         iv.Kind,
				ScheduledFor: iv.ScheduledFor,
			}
		}
	}

	g, err := grid.BuildHouseWeekGrid()
	if err != nil {
		return DashboardView{}, fmt.Errorf("build week grid: %w", err)
	}
	records, err := deps.ScheduleStore.ListRecords(ctx)
	if err != nil {
		return DashboardView{}, fmt.Errorf("load schedule: %w", err)
	}
	grid.Import(g, records)

	nowMinutes := now.Hour()*60 + now.Minute()
	if row, ok := grid.LocateCurrentRow(nowMinutes, g); ok {
		view.CurrentTimeLabel = g.Slots()[row].Label
		for _, day := range g.Days() {
			cell, err := g.GetCell(row, day.Index)
			if err != nil || cell.IsPlaceholder {
				continue
			}
			leader, err := g.GetCell(row, cell.LeaderCol)
			if err != nil || leader.Text == "" {
				continue
			}
			view.CurrentActivities = append(view.CurrentActivities, CurrentActivity{
				Day:      day.Label,
				Text:     leader.Text,
				Category: string(grid.Classify(leader.Text)),
			})
		}
	}

	return view, nil
}
