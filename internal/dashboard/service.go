package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/cycle"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
	util "github.com/rafaelpontes/focushub/internal/utils"
)

type DashboardService interface {
	Overview(ctx context.Context, userID uuid.UUID, weekOf time.Time) (*OverviewResponse, error)
	Today(ctx context.Context, userID uuid.UUID, now time.Time) (*TodayResponse, error)
	TimeStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*TimeStatsResponse, error)
}

type dashboardService struct {
	projectRepo  project.ProjectRepository
	taskRepo     task.TaskRepository
	entryRepo    timeentry.EntryRepository
	eventRepo    calendar.EventRepository
	cycleRepo    cycle.CycleRepository
	taskService  task.TaskService
	entryService timeentry.EntryService
}

func NewService(
	projectRepo project.ProjectRepository,
	taskRepo task.TaskRepository,
	entryRepo timeentry.EntryRepository,
	eventRepo calendar.EventRepository,
	cycleRepo cycle.CycleRepository,
	taskService task.TaskService,
	entryService timeentry.EntryService,
) DashboardService {
	return &dashboardService{
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		entryRepo:    entryRepo,
		eventRepo:    eventRepo,
		cycleRepo:    cycleRepo,
		taskService:  taskService,
		entryService: entryService,
	}
}

func (s *dashboardService) Overview(ctx context.Context, userID uuid.UUID, weekOf time.Time) (*OverviewResponse, error) {
	log := config.WithContext(ctx)
	from, to := util.WeekBounds(weekOf)

	projects, err := s.projectRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load projects for overview")
		return nil, err
	}
	entries, err := s.entryRepo.ListStoppedInRange(userID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load time entries for overview")
		return nil, err
	}
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load tasks for overview")
		return nil, err
	}

	summaries := AggregateWeek(projects, entries, tasks, from, to)

	// Preserve the user's display order.
	ordered := make([]*ProjectWeekSummary, 0, len(projects))
	for _, p := range projects {
		ordered = append(ordered, summaries[p.ID])
	}

	return &OverviewResponse{
		WeekStart: from,
		WeekEnd:   to,
		Projects:  ordered,
	}, nil
}

func (s *dashboardService) Today(ctx context.Context, userID uuid.UUID, now time.Time) (*TodayResponse, error) {
	log := config.WithContext(ctx)
	dayStart, dayEnd := util.DayBounds(now)

	tasks, err := s.taskService.ListToday(ctx, userID, now)
	if err != nil {
		log.WithError(err).Error("Failed to load today's tasks")
		return nil, err
	}
	events, err := s.eventRepo.ListRange(userID, dayStart, dayEnd)
	if err != nil {
		log.WithError(err).Error("Failed to load today's events")
		return nil, err
	}
	running, err := s.entryRepo.FindRunning(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load running entry")
		return nil, err
	}
	current, err := s.cycleRepo.FindCurrent(userID, now)
	if err != nil {
		log.WithError(err).Error("Failed to load current cycle")
		return nil, err
	}

	return &TodayResponse{
		Tasks:        tasks,
		Events:       events,
		RunningEntry: running,
		CurrentCycle: current,
	}, nil
}

func (s *dashboardService) TimeStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*TimeStatsResponse, error) {
	log := config.WithContext(ctx)

	entries, err := s.entryRepo.ListStoppedInRange(userID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load time entries for stats")
		return nil, err
	}

	byDay := DailyMinutes(entries, from, to)
	byProject := ProjectMinutes(entries, from, to)

	total := 0
	projectEntries := make([]ProjectMinutesEntry, 0, len(byProject))
	for id, minutes := range byProject {
		total += minutes
		projectEntries = append(projectEntries, ProjectMinutesEntry{ProjectID: id, Minutes: minutes})
	}
	sort.Slice(projectEntries, func(i, j int) bool {
		return projectEntries[i].Minutes > projectEntries[j].Minutes
	})

	return &TimeStatsResponse{
		From:         from,
		To:           to,
		TotalMinutes: total,
		ByDay:        byDay,
		ByProject:    projectEntries,
	}, nil
}
