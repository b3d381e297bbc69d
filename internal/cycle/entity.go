package cycle

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/user"
	"gorm.io/datatypes"
)

type Cycle struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name      string    `gorm:"not null" json:"name"`
	Kind      CycleKind `gorm:"default:week" json:"kind"`
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"end_date"`
	Goals     string    `json:"goals,omitempty"`

	// Prioritized projects for the cycle, in priority order.
	ProjectIDs datatypes.JSONSlice[uuid.UUID] `gorm:"column:project_ids" json:"project_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
