package project

import "github.com/google/uuid"

type CreateProjectDTO struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Color        string   `json:"color"`
	Icon         string   `json:"icon"`
	HoursPerWeek *float64 `json:"hours_per_week"`
	NextAction   string   `json:"next_action"`
}

type UpdateProjectDTO struct {
	Name           *string        `json:"name"`
	Description    *string        `json:"description"`
	Color          *string        `json:"color"`
	Icon           *string        `json:"icon"`
	Status         *ProjectStatus `json:"status"`
	HoursPerWeek   *float64       `json:"hours_per_week"`
	NextAction     *string        `json:"next_action"`
	NextActionNote *string        `json:"next_action_note"`
}

type ReorderDTO struct {
	IDs []uuid.UUID `json:"ids"`
}
