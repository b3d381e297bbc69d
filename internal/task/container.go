package task

import (
	"github.com/rafaelpontes/focushub/internal/project"
	"gorm.io/gorm"
)

type TaskContainer struct {
	Handler *Handler
	Service TaskService
	Repo    TaskRepository
}

func NewTaskContainer(db *gorm.DB, projectService project.ProjectService) *TaskContainer {
	repo := NewRepository(db)
	service := NewService(repo, projectService)
	handler := NewHandler(service)

	return &TaskContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
