package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/project"
	util "github.com/rafaelpontes/focushub/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = project.ErrProjectNotFound
	ErrInvalidTitle    = errors.New("task title is required")
	ErrInvalidPriority = errors.New("invalid task priority")
)

type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateTaskDTO) (*Task, error)
	List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]Task, error)
	ListToday(ctx context.Context, userID uuid.UUID, now time.Time) ([]Task, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Task, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTaskDTO) (*Task, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}

type taskService struct {
	repo           TaskRepository
	projectService project.ProjectService
}

func NewService(repo TaskRepository, projectService project.ProjectService) TaskService {
	return &taskService{
		repo:           repo,
		projectService: projectService,
	}
}

func (s *taskService) validateProject(ctx context.Context, log logrus.FieldLogger, userID uuid.UUID, projectID *uuid.UUID) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectService.GetByID(ctx, *projectID, userID); err != nil {
		log.WithFields(logrus.Fields{
			"project_id": *projectID,
			"user_id":    userID,
		}).Warn("Project not found or does not belong to the user")
		return ErrProjectNotFound
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, dto CreateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if err := s.validateProject(ctx, log, userID, dto.ProjectID); err != nil {
		return nil, err
	}

	t := Task{
		ID:               uuid.New(),
		UserID:           userID,
		ProjectID:        dto.ProjectID,
		Title:            title,
		Notes:            dto.Notes,
		DueAt:            dto.DueAt,
		StartAt:          dto.StartAt,
		EndAt:            dto.EndAt,
		Priority:         priority,
		EstimatedMinutes: dto.EstimatedMinutes,
	}

	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithField("task_id", t.ID).Info("Task created")
	return &t, nil
}

func (s *taskService) List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]Task, error) {
	log := config.WithContext(ctx)

	if projectID != nil {
		if err := s.validateProject(ctx, log, userID, projectID); err != nil {
			return nil, err
		}
		return s.repo.ListByProjectAndUser(*projectID, userID)
	}
	return s.repo.ListByUser(userID)
}

func (s *taskService) ListToday(ctx context.Context, userID uuid.UUID, now time.Time) ([]Task, error) {
	_, dayEnd := util.DayBounds(now)
	return s.repo.ListDueBy(userID, dayEnd)
}

func (s *taskService) GetByID(ctx context.Context, id, userID uuid.UUID) (*Task, error) {
	t, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// applyCompletion keeps the completed flag and completed_at in lockstep:
// completing without a timestamp stamps now, un-completing clears it.
func applyCompletion(t *Task, completed bool, at *time.Time, now time.Time) {
	t.Completed = completed
	if !completed {
		t.CompletedAt = nil
		return
	}
	if at != nil {
		t.CompletedAt = at
	} else if t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}

func (s *taskService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)

	t, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, ErrInvalidTitle
		}
		t.Title = title
	}
	if dto.Notes != nil {
		t.Notes = *dto.Notes
	}
	if dto.ProjectID != nil {
		if err := s.validateProject(ctx, log, userID, dto.ProjectID); err != nil {
			return nil, err
		}
		t.ProjectID = dto.ProjectID
	}
	if dto.Completed != nil {
		applyCompletion(t, *dto.Completed, dto.CompletedAt, time.Now())
	}
	if dto.DueAt != nil {
		t.DueAt = dto.DueAt
	}
	if dto.StartAt != nil {
		t.StartAt = dto.StartAt
	}
	if dto.EndAt != nil {
		t.EndAt = dto.EndAt
	}
	if dto.Priority != nil {
		if !dto.Priority.IsValid() {
			return nil, ErrInvalidPriority
		}
		t.Priority = *dto.Priority
	}
	if dto.EstimatedMinutes != nil {
		t.EstimatedMinutes = dto.EstimatedMinutes
	}
	if dto.ActualMinutes != nil {
		t.ActualMinutes = dto.ActualMinutes
	}

	if err := s.repo.Update(t); err != nil {
		log.WithError(err).Error("Failed to update task")
		return nil, err
	}

	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTaskNotFound
		}
		log.WithError(err).Error("Failed to delete task")
		return err
	}

	log.WithField("task_id", id).Info("Task deleted")
	return nil
}

func (s *taskService) Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.UpdatePositions(userID, ids); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
