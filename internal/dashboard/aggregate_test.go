package dashboard_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/dashboard"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
)

var (
	weekStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // a Monday
	weekEnd   = weekStart.AddDate(0, 0, 7)
)

func stoppedEntry(projectID uuid.UUID, start time.Time, minutes int) timeentry.TimeEntry {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return timeentry.TimeEntry{
		ID:              uuid.New(),
		ProjectID:       projectID,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: &minutes,
	}
}

func TestAggregateWeekTargetComparison(t *testing.T) {
	target := 15.0
	p := project.Project{ID: uuid.New(), Name: "deep work", Status: project.StatusOnTrack, HoursPerWeek: &target}

	// 12.5 hours spread over the week.
	entries := []timeentry.TimeEntry{
		stoppedEntry(p.ID, weekStart.Add(9*time.Hour), 300),
		stoppedEntry(p.ID, weekStart.AddDate(0, 0, 2).Add(14*time.Hour), 270),
		stoppedEntry(p.ID, weekStart.AddDate(0, 0, 4).Add(8*time.Hour), 180),
	}

	summaries := dashboard.AggregateWeek([]project.Project{p}, entries, nil, weekStart, weekEnd)

	s := summaries[p.ID]
	if s == nil {
		t.Fatal("expected a summary for the project")
	}
	if s.HoursLogged != 12.5 {
		t.Errorf("expected 12.5 hours logged, got %v", s.HoursLogged)
	}
	if s.HoursTarget == nil || *s.HoursTarget != 15 {
		t.Errorf("expected target of 15 hours, got %v", s.HoursTarget)
	}
	if s.OnTarget == nil || *s.OnTarget {
		t.Errorf("12.5 of 15 hours should be behind target, got %v", s.OnTarget)
	}
}

func TestAggregateWeekNoTargetStaysUnknown(t *testing.T) {
	p := project.Project{ID: uuid.New(), Name: "someday"}

	summaries := dashboard.AggregateWeek([]project.Project{p}, nil, nil, weekStart, weekEnd)

	s := summaries[p.ID]
	if s.HoursTarget != nil {
		t.Errorf("unset target should stay nil, got %v", *s.HoursTarget)
	}
	if s.OnTarget != nil {
		t.Errorf("target comparison should stay nil without a target, got %v", *s.OnTarget)
	}
	if s.HoursLogged != 0 {
		t.Errorf("no entries should mean 0 hours, got %v", s.HoursLogged)
	}
}

func TestAggregateWeekOrderIndependent(t *testing.T) {
	p := project.Project{ID: uuid.New(), Name: "ordered"}
	entries := []timeentry.TimeEntry{
		stoppedEntry(p.ID, weekStart.Add(1*time.Hour), 30),
		stoppedEntry(p.ID, weekStart.Add(3*time.Hour), 45),
		stoppedEntry(p.ID, weekStart.Add(5*time.Hour), 25),
	}
	reversed := []timeentry.TimeEntry{entries[2], entries[1], entries[0]}

	a := dashboard.AggregateWeek([]project.Project{p}, entries, nil, weekStart, weekEnd)
	b := dashboard.AggregateWeek([]project.Project{p}, reversed, nil, weekStart, weekEnd)

	if a[p.ID].MinutesLogged != b[p.ID].MinutesLogged {
		t.Errorf("fold is order-dependent: %d vs %d", a[p.ID].MinutesLogged, b[p.ID].MinutesLogged)
	}
	if a[p.ID].MinutesLogged != 100 {
		t.Errorf("expected 100 minutes, got %d", a[p.ID].MinutesLogged)
	}
}

func TestAggregateWeekExcludesOutsideAndRunning(t *testing.T) {
	p := project.Project{ID: uuid.New(), Name: "boundaries"}

	running := timeentry.TimeEntry{ID: uuid.New(), ProjectID: p.ID, StartTime: weekStart.Add(2 * time.Hour)}
	entries := []timeentry.TimeEntry{
		stoppedEntry(p.ID, weekStart.AddDate(0, 0, -1), 60),        // previous week
		stoppedEntry(p.ID, weekEnd.Add(time.Hour), 60),             // next week
		stoppedEntry(p.ID, weekStart.Add(-30*time.Minute), 60),     // straddles the boundary, counts in full
		stoppedEntry(p.ID, weekStart.AddDate(0, 0, 3), 90),         // inside
		stoppedEntry(uuid.New(), weekStart.AddDate(0, 0, 3), 1000), // another project
		running,
	}

	summaries := dashboard.AggregateWeek([]project.Project{p}, entries, nil, weekStart, weekEnd)

	if got := summaries[p.ID].MinutesLogged; got != 150 {
		t.Errorf("expected 150 minutes (straddling + inside), got %d", got)
	}
}

func TestAggregateWeekTaskCounts(t *testing.T) {
	p := project.Project{ID: uuid.New(), Name: "tasked"}
	pid := p.ID
	tasks := []task.Task{
		{ID: uuid.New(), ProjectID: &pid, Completed: true},
		{ID: uuid.New(), ProjectID: &pid, Completed: false},
		{ID: uuid.New(), ProjectID: &pid, Completed: true},
		{ID: uuid.New()}, // no project
	}

	summaries := dashboard.AggregateWeek([]project.Project{p}, nil, tasks, weekStart, weekEnd)

	s := summaries[p.ID]
	if s.TaskCount != 3 {
		t.Errorf("expected 3 tasks, got %d", s.TaskCount)
	}
	if s.CompletedTaskCount != 2 {
		t.Errorf("expected 2 completed tasks, got %d", s.CompletedTaskCount)
	}
}

func TestDailyMinutes(t *testing.T) {
	p := uuid.New()
	entries := []timeentry.TimeEntry{
		stoppedEntry(p, weekStart.Add(9*time.Hour), 60),
		stoppedEntry(p, weekStart.Add(15*time.Hour), 30),
		stoppedEntry(p, weekStart.AddDate(0, 0, 1).Add(10*time.Hour), 45),
	}

	byDay := dashboard.DailyMinutes(entries, weekStart, weekEnd)

	if byDay["2025-03-10"] != 90 {
		t.Errorf("expected 90 minutes on Monday, got %d", byDay["2025-03-10"])
	}
	if byDay["2025-03-11"] != 45 {
		t.Errorf("expected 45 minutes on Tuesday, got %d", byDay["2025-03-11"])
	}
}

func TestDailyMinutesClampsStraddlingEntry(t *testing.T) {
	p := uuid.New()
	// Starts Sunday 23:30, runs into Monday; it overlaps the week so it
	// counts, but its bucket must be a day inside the range.
	entries := []timeentry.TimeEntry{
		stoppedEntry(p, weekStart.Add(-30*time.Minute), 90),
	}

	byDay := dashboard.DailyMinutes(entries, weekStart, weekEnd)

	if _, ok := byDay["2025-03-09"]; ok {
		t.Error("no bucket may fall before the range start")
	}
	if byDay["2025-03-10"] != 90 {
		t.Errorf("straddling entry should land on the first day of the range, got %v", byDay)
	}
	for day := range byDay {
		if day < "2025-03-10" || day >= "2025-03-17" {
			t.Errorf("bucket %q outside the requested range", day)
		}
	}
}
