package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(e *Event) error
	FindByIDAndUserID(id, userID uuid.UUID) (*Event, error)
	FindByGoogleEventID(userID uuid.UUID, googleEventID string) (*Event, error)
	ListRange(userID uuid.UUID, from, to time.Time) ([]Event, error)
	Update(e *Event) error
	Delete(id, userID uuid.UUID) error
	DeleteByGoogleEventID(userID uuid.UUID, googleEventID string) error
	DeleteAllGoogleSourced(userID uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) FindByIDAndUserID(id, userID uuid.UUID) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) FindByGoogleEventID(userID uuid.UUID, googleEventID string) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "user_id = ? AND google_event_id = ?", userID, googleEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListRange returns events whose interval overlaps [from, to).
func (r *eventRepository) ListRange(userID uuid.UUID, from, to time.Time) ([]Event, error) {
	var events []Event
	if err := r.db.
		Where("user_id = ? AND start_time < ? AND end_time > ?", userID, to, from).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(e *Event) error {
	return r.db.Save(e).Error
}

func (r *eventRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Event{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) DeleteByGoogleEventID(userID uuid.UUID, googleEventID string) error {
	return r.db.Delete(&Event{}, "user_id = ? AND google_event_id = ?", userID, googleEventID).Error
}

func (r *eventRepository) DeleteAllGoogleSourced(userID uuid.UUID) error {
	return r.db.Delete(&Event{}, "user_id = ? AND source = ?", userID, SourceGoogle).Error
}
