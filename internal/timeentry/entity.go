package timeentry

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/user"
)

type TimeEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	// The partial unique index is the real guard on concurrent starts: two
	// transactions can both see "no running entry" under read committed, but
	// only one insert survives the index.
	UserID    uuid.UUID       `gorm:"type:uuid;column:user_id;not null;index;index:idx_one_running_entry,unique,where:end_time IS NULL" json:"user_id"`
	User      user.User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProjectID uuid.UUID       `gorm:"type:uuid;column:project_id;not null;index" json:"project_id"`
	Project   project.Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"column:start_time;not null" json:"start_time"`
	// Null while the entry is running.
	EndTime         *time.Time `gorm:"column:end_time;index" json:"end_time,omitempty"`
	DurationMinutes *int       `gorm:"column:duration_minutes" json:"duration_minutes,omitempty"`
	Notes           string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *TimeEntry) Running() bool {
	return e.EndTime == nil
}
