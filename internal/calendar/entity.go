package calendar

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/user"
)

type EventSource string

const (
	SourceLocal  EventSource = "local"
	SourceGoogle EventSource = "google"
)

type Event struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;column:user_id;not null;index;uniqueIndex:idx_user_google_event" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `gorm:"column:start_time;not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"column:end_time;not null" json:"end_time"`
	AllDay      bool      `gorm:"default:false" json:"all_day"`
	Color       string    `json:"color,omitempty"`

	Source EventSource `gorm:"default:local" json:"source"`
	// Set only on Google-synced rows; unique per user so a re-sync updates
	// in place instead of inserting a duplicate.
	GoogleEventID *string `gorm:"column:google_event_id;uniqueIndex:idx_user_google_event" json:"google_event_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
