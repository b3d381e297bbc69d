package cycle

import (
	"github.com/rafaelpontes/focushub/internal/project"
	"gorm.io/gorm"
)

type CycleContainer struct {
	Handler *Handler
	Service CycleService
	Repo    CycleRepository
}

func NewCycleContainer(db *gorm.DB, projectRepo project.ProjectRepository) *CycleContainer {
	repo := NewRepository(db)
	service := NewService(repo, projectRepo)
	handler := NewHandler(service)

	return &CycleContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
