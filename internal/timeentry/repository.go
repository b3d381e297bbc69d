package timeentry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEntryAlreadyRunning is returned when a start is attempted while another
// entry is still open for the same user.
var ErrEntryAlreadyRunning = errors.New("a time entry is already running")

type EntryRepository interface {
	// CreateIfNoneRunning inserts the entry only if the user has no running
	// entry. The pre-check gives a clean error on the common path; under
	// concurrency the partial unique index on (user_id) WHERE end_time IS NULL
	// is what keeps a second insert out.
	CreateIfNoneRunning(e *TimeEntry) error
	Create(e *TimeEntry) error
	FindByIDAndUserID(id, userID uuid.UUID) (*TimeEntry, error)
	FindRunning(userID uuid.UUID) (*TimeEntry, error)
	ListRange(userID uuid.UUID, from, to time.Time, projectID *uuid.UUID) ([]TimeEntry, error)
	ListStoppedInRange(userID uuid.UUID, from, to time.Time) ([]TimeEntry, error)
	Update(e *TimeEntry) error
	Delete(id, userID uuid.UUID) error
}

type entryRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateIfNoneRunning(e *TimeEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var running TimeEntry
		err := tx.Where("user_id = ? AND end_time IS NULL", e.UserID).First(&running).Error
		if err == nil {
			return ErrEntryAlreadyRunning
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(e).Error; err != nil {
			// A racing start that passed its own pre-check lands here.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEntryAlreadyRunning
			}
			return err
		}
		return nil
	})
}

func (r *entryRepository) Create(e *TimeEntry) error {
	return r.db.Create(e).Error
}

func (r *entryRepository) FindByIDAndUserID(id, userID uuid.UUID) (*TimeEntry, error) {
	var e TimeEntry
	if err := r.db.First(&e, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *entryRepository) FindRunning(userID uuid.UUID) (*TimeEntry, error) {
	var e TimeEntry
	if err := r.db.First(&e, "user_id = ? AND end_time IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *entryRepository) ListRange(userID uuid.UUID, from, to time.Time, projectID *uuid.UUID) ([]TimeEntry, error) {
	q := r.db.Where("user_id = ? AND start_time < ? AND (end_time IS NULL OR end_time > ?)", userID, to, from)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}

	var entries []TimeEntry
	if err := q.Order("start_time ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListStoppedInRange returns finished entries overlapping [from, to); running
// entries carry no duration yet and are excluded from rollups.
func (r *entryRepository) ListStoppedInRange(userID uuid.UUID, from, to time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	if err := r.db.
		Where("user_id = ? AND end_time IS NOT NULL AND start_time < ? AND end_time > ?", userID, to, from).
		Order("start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) Update(e *TimeEntry) error {
	return r.db.Save(e).Error
}

func (r *entryRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&TimeEntry{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
