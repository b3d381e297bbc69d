package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(p *Project) error
	FindAllByUserID(userID uuid.UUID) ([]Project, error)
	FindByIDAndUserID(id, userID uuid.UUID) (*Project, error)
	Update(p *Project) error
	DeleteCascade(id, userID uuid.UUID) error
	UpdatePositions(userID uuid.UUID, ids []uuid.UUID) error
	TouchLastWorked(id uuid.UUID, at time.Time) error
	CountByUser(userID uuid.UUID) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(p *Project) error {
	return r.db.Create(p).Error
}

func (r *projectRepository) FindAllByUserID(userID uuid.UUID) ([]Project, error) {
	var projects []Project
	if err := r.db.
		Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindByIDAndUserID(id, userID uuid.UUID) (*Project, error) {
	var p Project
	if err := r.db.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Update(p *Project) error {
	return r.db.Save(p).Error
}

// DeleteCascade removes the project together with its tasks and time entries.
func (r *projectRepository) DeleteCascade(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM time_entries WHERE project_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE project_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&Project{}, "id = ? AND user_id = ?", id, userID).Error
	})
}

func (r *projectRepository) UpdatePositions(userID uuid.UUID, ids []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&Project{}).
				Where("id = ? AND user_id = ?", id, userID).
				Update("position", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

func (r *projectRepository) TouchLastWorked(id uuid.UUID, at time.Time) error {
	return r.db.Model(&Project{}).
		Where("id = ?", id).
		Update("last_worked_at", at).Error
}

func (r *projectRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Project{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
