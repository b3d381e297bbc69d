package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type TaskRepository interface {
	Create(t *Task) error
	FindByIDAndUserID(id, userID uuid.UUID) (*Task, error)
	ListByUser(userID uuid.UUID) ([]Task, error)
	ListByProjectAndUser(projectID, userID uuid.UUID) ([]Task, error)
	ListDueBy(userID uuid.UUID, by time.Time) ([]Task, error)
	Update(t *Task) error
	Delete(id, userID uuid.UUID) error
	UpdatePositions(userID uuid.UUID, ids []uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(t *Task) error {
	return r.db.Create(t).Error
}

func (r *taskRepository) FindByIDAndUserID(id, userID uuid.UUID) (*Task, error) {
	var t Task
	if err := r.db.First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) ListByUser(userID uuid.UUID) ([]Task, error) {
	var tasks []Task
	if err := r.db.
		Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListByProjectAndUser(projectID, userID uuid.UUID) ([]Task, error) {
	var tasks []Task
	if err := r.db.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("position ASC, created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueBy returns incomplete tasks due on or before the given instant,
// which covers both today's tasks and the overdue backlog.
func (r *taskRepository) ListDueBy(userID uuid.UUID, by time.Time) ([]Task, error) {
	var tasks []Task
	if err := r.db.
		Where("user_id = ? AND completed = ? AND due_at IS NOT NULL AND due_at < ?", userID, false, by).
		Order("due_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(t *Task) error {
	return r.db.Save(t).Error
}

func (r *taskRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Task{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) UpdatePositions(userID uuid.UUID, ids []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&Task{}).
				Where("id = ? AND user_id = ?", id, userID).
				Update("position", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}
