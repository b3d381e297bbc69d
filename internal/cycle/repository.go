package cycle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	util "github.com/rafaelpontes/focushub/internal/utils"
	"gorm.io/gorm"
)

type CycleRepository interface {
	Create(c *Cycle) error
	FindAllByUserID(userID uuid.UUID) ([]Cycle, error)
	FindByIDAndUserID(id, userID uuid.UUID) (*Cycle, error)
	FindCurrent(userID uuid.UUID, at time.Time) (*Cycle, error)
	Update(c *Cycle) error
	Delete(id, userID uuid.UUID) error
}

type cycleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CycleRepository {
	return &cycleRepository{db: db}
}

func (r *cycleRepository) Create(c *Cycle) error {
	return r.db.Create(c).Error
}

func (r *cycleRepository) FindAllByUserID(userID uuid.UUID) ([]Cycle, error) {
	var cycles []Cycle
	if err := r.db.
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (r *cycleRepository) FindByIDAndUserID(id, userID uuid.UUID) (*Cycle, error) {
	var c Cycle
	if err := r.db.First(&c, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindCurrent returns the cycle whose range contains the given instant; when
// several overlap, the most recently started one wins. end_date is compared
// against the start of at's day, so a cycle stored with a midnight end_date
// stays current through the whole of its final day.
func (r *cycleRepository) FindCurrent(userID uuid.UUID, at time.Time) (*Cycle, error) {
	dayStart, _ := util.DayBounds(at)

	var c Cycle
	if err := r.db.
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, at, dayStart).
		Order("start_date DESC").
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cycleRepository) Update(c *Cycle) error {
	return r.db.Save(c).Error
}

func (r *cycleRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Cycle{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
