package container

import (
	"context"
	"log"
	"os"

	"github.com/rafaelpontes/focushub/internal/auth"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/cycle"
	"github.com/rafaelpontes/focushub/internal/dashboard"
	googlecalendar "github.com/rafaelpontes/focushub/internal/google_calendar"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
	"github.com/rafaelpontes/focushub/internal/user"
)

type Container struct {
	UserContainer           *user.UserContainer
	ProjectContainer        *project.ProjectContainer
	TaskContainer           *task.TaskContainer
	CalendarContainer       *calendar.CalendarContainer
	TimeEntryContainer      *timeentry.TimeEntryContainer
	CycleContainer          *cycle.CycleContainer
	DashboardContainer      *dashboard.DashboardContainer
	GoogleCalendarContainer *googlecalendar.GoogleCalendarContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn,
		&user.User{},
		&project.Project{},
		&task.Task{},
		&calendar.Event{},
		&timeentry.TimeEntry{},
		&cycle.Cycle{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	projectContainer := project.NewProjectContainer(config.DB)
	taskContainer := task.NewTaskContainer(config.DB, projectContainer.Service)
	calendarContainer := calendar.NewCalendarContainer(config.DB)
	timeEntryContainer := timeentry.NewTimeEntryContainer(config.DB, projectContainer.Repo)
	cycleContainer := cycle.NewCycleContainer(config.DB, projectContainer.Repo)

	dashboardContainer := dashboard.NewDashboardContainer(
		projectContainer.Repo,
		taskContainer.Repo,
		timeEntryContainer.Repo,
		calendarContainer.Repo,
		cycleContainer.Repo,
		taskContainer.Service,
		timeEntryContainer.Service,
	)

	googleCalendarContainer := googlecalendar.NewGoogleCalendarContainer(
		userContainer.Repo,
		calendarContainer.Service,
	)

	return &Container{
		UserContainer:           userContainer,
		ProjectContainer:        projectContainer,
		TaskContainer:           taskContainer,
		CalendarContainer:       calendarContainer,
		TimeEntryContainer:      timeEntryContainer,
		CycleContainer:          cycleContainer,
		DashboardContainer:      dashboardContainer,
		GoogleCalendarContainer: googleCalendarContainer,
	}
}
