package timeentry

import (
	"time"

	"github.com/google/uuid"
)

type StartDTO struct {
	ProjectID uuid.UUID `json:"project_id"`
	Notes     string    `json:"notes"`
}

type CreateEntryDTO struct {
	ProjectID uuid.UUID `json:"project_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     string    `json:"notes"`
}

type UpdateEntryDTO struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Notes     *string    `json:"notes"`
}
