package timeentry

import (
	"github.com/rafaelpontes/focushub/internal/project"
	"gorm.io/gorm"
)

type TimeEntryContainer struct {
	Handler *Handler
	Service EntryService
	Repo    EntryRepository
}

func NewTimeEntryContainer(db *gorm.DB, projectRepo project.ProjectRepository) *TimeEntryContainer {
	repo := NewRepository(db)
	service := NewService(repo, projectRepo)
	handler := NewHandler(service)

	return &TimeEntryContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
