package cycle

import (
	"time"

	"github.com/google/uuid"
)

type CreateCycleDTO struct {
	Name       string      `json:"name"`
	Kind       CycleKind   `json:"kind"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Goals      string      `json:"goals"`
	ProjectIDs []uuid.UUID `json:"project_ids"`
}

type UpdateCycleDTO struct {
	Name       *string      `json:"name"`
	Kind       *CycleKind   `json:"kind"`
	StartDate  *time.Time   `json:"start_date"`
	EndDate    *time.Time   `json:"end_date"`
	Goals      *string      `json:"goals"`
	ProjectIDs *[]uuid.UUID `json:"project_ids"`
}
