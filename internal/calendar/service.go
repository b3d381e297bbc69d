package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	util "github.com/rafaelpontes/focushub/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("calendar event not found")
	ErrInvalidTitle   = errors.New("event title is required")
	ErrInvalidRange   = errors.New("event must end after it starts")
	ErrGoogleReadOnly = errors.New("google-synced events cannot be edited locally")
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateEventDTO) (*Event, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Event, error)
	ListDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]Event, error)
	ListWeek(ctx context.Context, userID uuid.UUID, at time.Time) ([]Event, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Event, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// UpsertGoogleEvent writes a pulled event keyed by its external id,
	// updating the existing row on re-sync instead of duplicating it.
	UpsertGoogleEvent(ctx context.Context, e *Event) (*Event, error)
	RemoveGoogleEvent(ctx context.Context, userID uuid.UUID, googleEventID string) error
	RemoveAllGoogleEvents(ctx context.Context, userID uuid.UUID) error
}

type eventService struct {
	repo EventRepository
}

func NewService(repo EventRepository) EventService {
	return &eventService{repo: repo}
}

func validateInterval(start, end time.Time, allDay bool) error {
	if end.Before(start) {
		return ErrInvalidRange
	}
	if end.Equal(start) && !allDay {
		return ErrInvalidRange
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, dto CreateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if err := validateInterval(dto.StartTime, dto.EndTime, dto.AllDay); err != nil {
		return nil, err
	}

	e := Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: dto.Description,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		AllDay:      dto.AllDay,
		Color:       dto.Color,
		Source:      SourceLocal,
	}

	if err := s.repo.Create(&e); err != nil {
		log.WithError(err).Error("Failed to create calendar event")
		return nil, err
	}

	return &e, nil
}

func (s *eventService) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Event, error) {
	if !to.After(from) {
		return nil, ErrInvalidRange
	}
	return s.repo.ListRange(userID, from, to)
}

func (s *eventService) ListDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]Event, error) {
	from, to := util.DayBounds(day)
	return s.repo.ListRange(userID, from, to)
}

func (s *eventService) ListWeek(ctx context.Context, userID uuid.UUID, at time.Time) ([]Event, error) {
	from, to := util.WeekBounds(at)
	return s.repo.ListRange(userID, from, to)
}

func (s *eventService) GetByID(ctx context.Context, id, userID uuid.UUID) (*Event, error) {
	e, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

func (s *eventService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	e, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Synced rows are owned by the provider; only the color is editable,
	// everything else would be overwritten on the next pull anyway.
	if e.Source == SourceGoogle {
		if dto.Title != nil || dto.Description != nil || dto.StartTime != nil || dto.EndTime != nil || dto.AllDay != nil {
			return nil, ErrGoogleReadOnly
		}
	}

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, ErrInvalidTitle
		}
		e.Title = title
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.StartTime != nil {
		e.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		e.EndTime = *dto.EndTime
	}
	if dto.AllDay != nil {
		e.AllDay = *dto.AllDay
	}
	if err := validateInterval(e.StartTime, e.EndTime, e.AllDay); err != nil {
		return nil, err
	}
	if dto.Color != nil {
		e.Color = *dto.Color
	}

	if err := s.repo.Update(e); err != nil {
		log.WithError(err).Error("Failed to update calendar event")
		return nil, err
	}

	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		log.WithError(err).Error("Failed to delete calendar event")
		return err
	}
	return nil
}

func (s *eventService) UpsertGoogleEvent(ctx context.Context, e *Event) (*Event, error) {
	log := config.WithContext(ctx)

	if e.GoogleEventID == nil || *e.GoogleEventID == "" {
		return nil, errors.New("google event id is required for upsert")
	}

	existing, err := s.repo.FindByGoogleEventID(e.UserID, *e.GoogleEventID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		e.ID = uuid.New()
		e.Source = SourceGoogle
		if err := s.repo.Create(e); err != nil {
			log.WithError(err).Error("Failed to insert synced calendar event")
			return nil, err
		}
		return e, nil
	}

	existing.Title = e.Title
	existing.Description = e.Description
	existing.StartTime = e.StartTime
	existing.EndTime = e.EndTime
	existing.AllDay = e.AllDay
	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update synced calendar event")
		return nil, err
	}
	return existing, nil
}

func (s *eventService) RemoveGoogleEvent(ctx context.Context, userID uuid.UUID, googleEventID string) error {
	return s.repo.DeleteByGoogleEventID(userID, googleEventID)
}

func (s *eventService) RemoveAllGoogleEvents(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteAllGoogleSourced(userID)
}
