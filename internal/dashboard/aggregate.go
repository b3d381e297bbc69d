package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
	util "github.com/rafaelpontes/focushub/internal/utils"
)

// ProjectWeekSummary is the per-project rollup behind the overview endpoint.
// HoursTarget and OnTarget stay nil when the project has no weekly target, so
// an unset target never reads as "behind".
type ProjectWeekSummary struct {
	ProjectID          uuid.UUID             `json:"project_id"`
	Name               string                `json:"name"`
	Status             project.ProjectStatus `json:"status"`
	MinutesLogged      int                   `json:"minutes_logged"`
	HoursLogged        float64               `json:"hours_logged"`
	HoursTarget        *float64              `json:"hours_target,omitempty"`
	OnTarget           *bool                 `json:"on_target,omitempty"`
	TaskCount          int                   `json:"task_count"`
	CompletedTaskCount int                   `json:"completed_task_count"`
	LastWorkedAt       *time.Time            `json:"last_worked_at,omitempty"`
}

// AggregateWeek folds stopped entries and tasks into per-project summaries for
// [from, to). An entry contributes its full duration when its interval
// overlaps the window; the fold is order-independent.
func AggregateWeek(projects []project.Project, entries []timeentry.TimeEntry, tasks []task.Task, from, to time.Time) map[uuid.UUID]*ProjectWeekSummary {
	summaries := make(map[uuid.UUID]*ProjectWeekSummary, len(projects))

	for _, p := range projects {
		s := &ProjectWeekSummary{
			ProjectID:    p.ID,
			Name:         p.Name,
			Status:       p.Status,
			HoursTarget:  p.HoursPerWeek,
			LastWorkedAt: p.LastWorkedAt,
		}
		summaries[p.ID] = s
	}

	for _, e := range entries {
		if e.EndTime == nil || e.DurationMinutes == nil {
			continue
		}
		if !util.Overlaps(e.StartTime, *e.EndTime, from, to) {
			continue
		}
		if s, ok := summaries[e.ProjectID]; ok {
			s.MinutesLogged += *e.DurationMinutes
		}
	}

	for _, t := range tasks {
		if t.ProjectID == nil {
			continue
		}
		if s, ok := summaries[*t.ProjectID]; ok {
			s.TaskCount++
			if t.Completed {
				s.CompletedTaskCount++
			}
		}
	}

	for _, s := range summaries {
		s.HoursLogged = float64(s.MinutesLogged) / 60
		if s.HoursTarget != nil {
			onTarget := s.HoursLogged >= *s.HoursTarget
			s.OnTarget = &onTarget
		}
	}

	return summaries
}

// DailyMinutes buckets stopped entries by calendar day of their start time,
// clamped to the range so every key falls inside [from, to).
func DailyMinutes(entries []timeentry.TimeEntry, from, to time.Time) map[string]int {
	days := make(map[string]int)
	for _, e := range entries {
		if e.EndTime == nil || e.DurationMinutes == nil {
			continue
		}
		if !util.Overlaps(e.StartTime, *e.EndTime, from, to) {
			continue
		}
		day := e.StartTime
		if day.Before(from) {
			day = from
		}
		days[day.Format("2006-01-02")] += *e.DurationMinutes
	}
	return days
}

// ProjectMinutes totals stopped entries per project over the range.
func ProjectMinutes(entries []timeentry.TimeEntry, from, to time.Time) map[uuid.UUID]int {
	totals := make(map[uuid.UUID]int)
	for _, e := range entries {
		if e.EndTime == nil || e.DurationMinutes == nil {
			continue
		}
		if !util.Overlaps(e.StartTime, *e.EndTime, from, to) {
			continue
		}
		totals[e.ProjectID] += *e.DurationMinutes
	}
	return totals
}
