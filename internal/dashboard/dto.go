package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/cycle"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
)

type OverviewResponse struct {
	WeekStart time.Time             `json:"week_start"`
	WeekEnd   time.Time             `json:"week_end"`
	Projects  []*ProjectWeekSummary `json:"projects"`
}

type TodayResponse struct {
	Tasks        []task.Task          `json:"tasks"`
	Events       []calendar.Event     `json:"events"`
	RunningEntry *timeentry.TimeEntry `json:"running_entry,omitempty"`
	CurrentCycle *cycle.Cycle         `json:"current_cycle,omitempty"`
}

type ProjectMinutesEntry struct {
	ProjectID uuid.UUID `json:"project_id"`
	Minutes   int       `json:"minutes"`
}

type TimeStatsResponse struct {
	From         time.Time             `json:"from"`
	To           time.Time             `json:"to"`
	TotalMinutes int                   `json:"total_minutes"`
	ByDay        map[string]int        `json:"by_day"`
	ByProject    []ProjectMinutesEntry `json:"by_project"`
}
