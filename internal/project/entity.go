package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/user"
)

type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Status      ProjectStatus `gorm:"default:on_track" json:"status"`

	HoursPerWeek   *float64 `json:"hours_per_week,omitempty"`
	NextAction     string   `json:"next_action,omitempty"`
	NextActionNote string   `json:"next_action_note,omitempty"`

	LastWorkedAt *time.Time `gorm:"column:last_worked_at" json:"last_worked_at,omitempty"`
	Position     int        `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
