package projections

import (
	"context"
	"fmt"
	"time"

	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/checkin"
	"caseboard/internal/domain/intervention"
)

// ReportCheckInReader is the check-in surface the weekly report reads.
type ReportCheckInReader interface {
	ListByDay(ctx context.Context, day string) ([]checkin.CheckIn, error)
}

// ReportInterventionReader is the intervention surface the weekly report reads.
type ReportInterventionReader interface {
	ListByStatus(ctx context.Context, status string) ([]intervention.Intervention, error)
}

// ReportActivityLogReader is the log surface the weekly report reads.
type ReportActivityLogReader interface {
	Count(ctx context.Context, filter activitylogStore.Filter) (int, error)
}

// GetWeeklyReportDeps declares the stores the weekly report reads.
type GetWeeklyReportDeps struct {
	CheckInStore      ReportCheckInReader
	InterventionStore ReportInterventionReader
	ActivityLogStore  ReportActivityLogReader
	Now               func() time.Time
}

// DayReport is one day's activity totals.
type DayReport struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	CheckIns   int     `json:"checkIns"`
	AvgMood    float64 `json:"avgMood"`
	NotesAdded int     `json:"notesAdded"`
}

// WeeklyReportView summarises the last seven days of house activity.
type WeeklyReportView struct {
	WeekStart            string      `json:"weekStart"` // YYYY-MM-DD, oldest day
	WeekEnd              string      `json:"weekEnd"`   // YYYY-MM-DD, today
	Days                 []DayReport `json:"days"`
	TotalCheckIns        int         `json:"totalCheckIns"`
	SessionsCompleted    int         `json:"sessionsCompleted"`
	SessionsStillPlanned int         `json:"sessionsStillPlanned"`
}

// GetWeeklyReport assembles per-day check-in and note counts for the seven
// days ending today, plus intervention totals for the same window.
// PRE: all deps are non-nil
// POST: Days has exactly seven entries, oldest first
func GetWeeklyReport(ctx context.Context, deps GetWeeklyReportDeps) (WeeklyReportView, error) {
	now := deps.Now()
	var view WeeklyReportView

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		checkins, err := deps.CheckInStore.ListByDay(ctx, day)
		if err != nil {
			return WeeklyReportView{}, fmt.Errorf("list check-ins for %s: %w", day, err)
		}
		report := DayReport{Date: day, CheckIns: len(checkins)}
		if len(checkins) > 0 {
			sum := 0
			for _, ci := range checkins {
				sum += ci.Mood
			}
			report.AvgMood = float64(sum) / float64(len(checkins))
		}
		notes, err := deps.ActivityLogStore.Count(ctx, activitylogStore.Filter{
			Action: activitylog.ActionAddProgressNote,
			Day:    day,
		})
		if err != nil {
			return WeeklyReportView{}, fmt.Errorf("count notes for %s: %w", day, err)
		}
		report.NotesAdded = notes

		view.Days = append(view.Days, report)
		view.TotalCheckIns += report.CheckIns
	}
	view.WeekStart = view.Days[0].Date
	view.WeekEnd = view.Days[len(view.Days)-1].Date

	weekStart := now.AddDate(0, 0, -6).Truncate(24 * time.Hour)
	completed, err := deps.InterventionStore.ListByStatus(ctx, intervention.StatusCompleted)
	if err != nil {
		return WeeklyReportView{}, fmt.Errorf("list completed interventions: %w", err)
	}
	for _, iv := range completed {
		if !iv.ScheduledFor.Before(weekStart) {
			view.SessionsCompleted++
		}
	}
	planned, err := deps.InterventionStore.ListByStatus(ctx, intervention.StatusScheduled)
	if err != nil {
		return WeeklyReportView{}, fmt.Errorf("list scheduled interventions: %w", err)
	}
	view.SessionsStillPlanned = len(planned)

	return view, nil
}
