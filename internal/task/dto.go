package task

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskDTO struct {
	Title            string       `json:"title"`
	Notes            string       `json:"notes"`
	ProjectID        *uuid.UUID   `json:"project_id"`
	DueAt            *time.Time   `json:"due_at"`
	StartAt          *time.Time   `json:"start_at"`
	EndAt            *time.Time   `json:"end_at"`
	Priority         TaskPriority `json:"priority"`
	EstimatedMinutes *int         `json:"estimated_minutes"`
}

type UpdateTaskDTO struct {
	Title            *string       `json:"title"`
	Notes            *string       `json:"notes"`
	ProjectID        *uuid.UUID    `json:"project_id"`
	Completed        *bool         `json:"completed"`
	CompletedAt      *time.Time    `json:"completed_at"`
	DueAt            *time.Time    `json:"due_at"`
	StartAt          *time.Time    `json:"start_at"`
	EndAt            *time.Time    `json:"end_at"`
	Priority         *TaskPriority `json:"priority"`
	EstimatedMinutes *int          `json:"estimated_minutes"`
	ActualMinutes    *int          `json:"actual_minutes"`
}

type ReorderDTO struct {
	IDs []uuid.UUID `json:"ids"`
}
