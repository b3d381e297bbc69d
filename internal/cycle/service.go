package cycle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/project"
	"gorm.io/gorm"
)

var (
	ErrCycleNotFound   = errors.New("cycle not found")
	ErrProjectNotFound = project.ErrProjectNotFound
	ErrInvalidName     = errors.New("cycle name is required")
	ErrInvalidKind     = errors.New("invalid cycle kind")
	ErrInvalidRange    = errors.New("cycle must start on or before its end date")
)

type CycleService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateCycleDTO) (*Cycle, error)
	List(ctx context.Context, userID uuid.UUID) ([]Cycle, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Cycle, error)
	Current(ctx context.Context, userID uuid.UUID, at time.Time) (*Cycle, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCycleDTO) (*Cycle, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type cycleService struct {
	repo        CycleRepository
	projectRepo project.ProjectRepository
}

func NewService(repo CycleRepository, projectRepo project.ProjectRepository) CycleService {
	return &cycleService{
		repo:        repo,
		projectRepo: projectRepo,
	}
}

func (s *cycleService) validateProjects(userID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		p, err := s.projectRepo.FindByIDAndUserID(id, userID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProjectNotFound
		}
	}
	return nil
}

func (s *cycleService) Create(ctx context.Context, userID uuid.UUID, dto CreateCycleDTO) (*Cycle, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	kind := dto.Kind
	if kind == "" {
		kind = KindWeek
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	if dto.EndDate.Before(dto.StartDate) {
		return nil, ErrInvalidRange
	}
	if err := s.validateProjects(userID, dto.ProjectIDs); err != nil {
		return nil, err
	}

	c := Cycle{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Kind:       kind,
		StartDate:  dto.StartDate,
		EndDate:    dto.EndDate,
		Goals:      dto.Goals,
		ProjectIDs: dto.ProjectIDs,
	}

	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create cycle")
		return nil, err
	}

	log.WithField("cycle_id", c.ID).Info("Cycle created")
	return &c, nil
}

func (s *cycleService) List(ctx context.Context, userID uuid.UUID) ([]Cycle, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *cycleService) GetByID(ctx context.Context, id, userID uuid.UUID) (*Cycle, error) {
	c, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCycleNotFound
	}
	return c, nil
}

func (s *cycleService) Current(ctx context.Context, userID uuid.UUID, at time.Time) (*Cycle, error) {
	return s.repo.FindCurrent(userID, at)
}

func (s *cycleService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCycleDTO) (*Cycle, error) {
	log := config.WithContext(ctx)

	c, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		c.Name = name
	}
	if dto.Kind != nil {
		if !dto.Kind.IsValid() {
			return nil, ErrInvalidKind
		}
		c.Kind = *dto.Kind
	}
	if dto.StartDate != nil {
		c.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		c.EndDate = *dto.EndDate
	}
	if c.EndDate.Before(c.StartDate) {
		return nil, ErrInvalidRange
	}
	if dto.Goals != nil {
		c.Goals = *dto.Goals
	}
	if dto.ProjectIDs != nil {
		if err := s.validateProjects(userID, *dto.ProjectIDs); err != nil {
			return nil, err
		}
		c.ProjectIDs = *dto.ProjectIDs
	}

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Failed to update cycle")
		return nil, err
	}

	return c, nil
}

func (s *cycleService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCycleNotFound
		}
		log.WithError(err).Error("Failed to delete cycle")
		return err
	}
	return nil
}
