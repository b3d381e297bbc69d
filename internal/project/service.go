package project

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidName     = errors.New("project name is required")
	ErrInvalidColor    = errors.New("color must be a hex value like #1a2b3c")
	ErrInvalidTarget   = errors.New("hours_per_week must be positive")
	ErrInvalidStatus   = errors.New("invalid project status")
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateProjectDTO) (*Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]Project, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Project, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateProjectDTO) (*Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}

type projectService struct {
	repo ProjectRepository
}

func NewService(repo ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func validateColor(color string) error {
	if color != "" && !hexColorRe.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}

func validateTarget(hours *float64) error {
	if hours != nil && *hours <= 0 {
		return ErrInvalidTarget
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, userID uuid.UUID, dto CreateProjectDTO) (*Project, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := validateColor(dto.Color); err != nil {
		return nil, err
	}
	if err := validateTarget(dto.HoursPerWeek); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count projects")
		return nil, err
	}

	p := Project{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Description:  dto.Description,
		Color:        dto.Color,
		Icon:         dto.Icon,
		Status:       StatusOnTrack,
		HoursPerWeek: dto.HoursPerWeek,
		NextAction:   dto.NextAction,
		Position:     int(count),
	}

	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to create project")
		return nil, err
	}

	log.WithField("project_id", p.ID).Info("Project created")
	return &p, nil
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *projectService) GetByID(ctx context.Context, id, userID uuid.UUID) (*Project, error) {
	p, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateProjectDTO) (*Project, error) {
	log := config.WithContext(ctx)

	p, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		p.Name = name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Color != nil {
		if err := validateColor(*dto.Color); err != nil {
			return nil, err
		}
		p.Color = *dto.Color
	}
	if dto.Icon != nil {
		p.Icon = *dto.Icon
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		p.Status = *dto.Status
	}
	if dto.HoursPerWeek != nil {
		// Zero clears the weekly target; anything else must be positive.
		if *dto.HoursPerWeek == 0 {
			p.HoursPerWeek = nil
		} else if *dto.HoursPerWeek < 0 {
			return nil, ErrInvalidTarget
		} else {
			p.HoursPerWeek = dto.HoursPerWeek
		}
	}
	if dto.NextAction != nil {
		p.NextAction = *dto.NextAction
	}
	if dto.NextActionNote != nil {
		p.NextActionNote = *dto.NextActionNote
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to update project")
		return nil, err
	}

	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.DeleteCascade(id, userID); err != nil {
		log.WithError(err).Error("Failed to delete project")
		return err
	}

	log.WithField("project_id", id).Info("Project deleted")
	return nil
}

func (s *projectService) Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.UpdatePositions(userID, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}
