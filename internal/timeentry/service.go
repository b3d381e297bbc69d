package timeentry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/project"
	util "github.com/rafaelpontes/focushub/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound   = errors.New("time entry not found")
	ErrNoRunningEntry  = errors.New("no running time entry")
	ErrProjectNotFound = project.ErrProjectNotFound
	ErrInvalidInterval = errors.New("entry must end after it starts")
)

type EntryService interface {
	Start(ctx context.Context, userID uuid.UUID, dto StartDTO) (*TimeEntry, error)
	Stop(ctx context.Context, userID uuid.UUID, now time.Time) (*TimeEntry, error)
	Current(ctx context.Context, userID uuid.UUID) (*TimeEntry, error)
	CreateManual(ctx context.Context, userID uuid.UUID, dto CreateEntryDTO) (*TimeEntry, error)
	List(ctx context.Context, userID uuid.UUID, from, to time.Time, projectID *uuid.UUID) ([]TimeEntry, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEntryDTO) (*TimeEntry, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type entryService struct {
	repo        EntryRepository
	projectRepo project.ProjectRepository
}

func NewService(repo EntryRepository, projectRepo project.ProjectRepository) EntryService {
	return &entryService{
		repo:        repo,
		projectRepo: projectRepo,
	}
}

func (s *entryService) ownedProject(userID, projectID uuid.UUID) error {
	p, err := s.projectRepo.FindByIDAndUserID(projectID, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProjectNotFound
	}
	return nil
}

func (s *entryService) Start(ctx context.Context, userID uuid.UUID, dto StartDTO) (*TimeEntry, error) {
	log := config.WithContext(ctx)

	if err := s.ownedProject(userID, dto.ProjectID); err != nil {
		return nil, err
	}

	e := TimeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: dto.ProjectID,
		StartTime: time.Now(),
		Notes:     dto.Notes,
	}

	if err := s.repo.CreateIfNoneRunning(&e); err != nil {
		if errors.Is(err, ErrEntryAlreadyRunning) {
			return nil, err
		}
		log.WithError(err).Error("Failed to start time entry")
		return nil, err
	}

	log.WithField("entry_id", e.ID).Info("Time entry started")
	return &e, nil
}

func (s *entryService) Stop(ctx context.Context, userID uuid.UUID, now time.Time) (*TimeEntry, error) {
	log := config.WithContext(ctx)

	e, err := s.repo.FindRunning(userID)
	if err != nil {
		log.WithError(err).Error("Failed to look up running entry")
		return nil, err
	}
	if e == nil {
		return nil, ErrNoRunningEntry
	}

	minutes := util.WholeMinutes(e.StartTime, now)
	e.EndTime = &now
	e.DurationMinutes = &minutes

	if err := s.repo.Update(e); err != nil {
		log.WithError(err).Error("Failed to stop time entry")
		return nil, err
	}

	if err := s.projectRepo.TouchLastWorked(e.ProjectID, now); err != nil {
		log.WithError(err).Warn("Failed to stamp project last_worked_at")
	}

	log.WithField("entry_id", e.ID).Info("Time entry stopped")
	return e, nil
}

func (s *entryService) Current(ctx context.Context, userID uuid.UUID) (*TimeEntry, error) {
	return s.repo.FindRunning(userID)
}

func (s *entryService) CreateManual(ctx context.Context, userID uuid.UUID, dto CreateEntryDTO) (*TimeEntry, error) {
	log := config.WithContext(ctx)

	if err := s.ownedProject(userID, dto.ProjectID); err != nil {
		return nil, err
	}
	if !dto.EndTime.After(dto.StartTime) {
		return nil, ErrInvalidInterval
	}

	minutes := util.WholeMinutes(dto.StartTime, dto.EndTime)
	end := dto.EndTime
	e := TimeEntry{
		ID:              uuid.New(),
		UserID:          userID,
		ProjectID:       dto.ProjectID,
		StartTime:       dto.StartTime,
		EndTime:         &end,
		DurationMinutes: &minutes,
		Notes:           dto.Notes,
	}

	if err := s.repo.Create(&e); err != nil {
		log.WithError(err).Error("Failed to create time entry")
		return nil, err
	}

	return &e, nil
}

func (s *entryService) List(ctx context.Context, userID uuid.UUID, from, to time.Time, projectID *uuid.UUID) ([]TimeEntry, error) {
	if !to.After(from) {
		return nil, ErrInvalidInterval
	}
	return s.repo.ListRange(userID, from, to, projectID)
}

func (s *entryService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEntryDTO) (*TimeEntry, error) {
	log := config.WithContext(ctx)

	e, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEntryNotFound
	}

	if dto.StartTime != nil {
		e.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		e.EndTime = dto.EndTime
	}
	if dto.Notes != nil {
		e.Notes = *dto.Notes
	}

	// Manual start/end fixes re-derive the stored duration.
	if e.EndTime != nil {
		if !e.EndTime.After(e.StartTime) {
			return nil, ErrInvalidInterval
		}
		minutes := util.WholeMinutes(e.StartTime, *e.EndTime)
		e.DurationMinutes = &minutes
	}

	if err := s.repo.Update(e); err != nil {
		log.WithError(err).Error("Failed to update time entry")
		return nil, err
	}

	return e, nil
}

func (s *entryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		log.WithError(err).Error("Failed to delete time entry")
		return err
	}
	return nil
}
