package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/user"
)

type Task struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`
	User      user.User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProjectID *uuid.UUID `gorm:"type:uuid;column:project_id;index" json:"project_id,omitempty"`

	Project *project.Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title       string     `gorm:"not null" json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	DueAt   *time.Time `gorm:"column:due_at" json:"due_at,omitempty"`
	StartAt *time.Time `gorm:"column:start_at" json:"start_at,omitempty"`
	EndAt   *time.Time `gorm:"column:end_at" json:"end_at,omitempty"`

	Priority         TaskPriority `gorm:"default:medium" json:"priority"`
	EstimatedMinutes *int         `json:"estimated_minutes,omitempty"`
	ActualMinutes    *int         `json:"actual_minutes,omitempty"`
	Position         int          `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
