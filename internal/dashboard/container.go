package dashboard

import (
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/cycle"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
)

type DashboardContainer struct {
	Handler *Handler
	Service DashboardService
}

func NewDashboardContainer(
	projectRepo project.ProjectRepository,
	taskRepo task.TaskRepository,
	entryRepo timeentry.EntryRepository,
	eventRepo calendar.EventRepository,
	cycleRepo cycle.CycleRepository,
	taskService task.TaskService,
	entryService timeentry.EntryService,
) *DashboardContainer {
	service := NewService(projectRepo, taskRepo, entryRepo, eventRepo, cycleRepo, taskService, entryService)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
		Service: service,
	}
}
