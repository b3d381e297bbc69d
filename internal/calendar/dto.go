package calendar

import "time"

type CreateEventDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day"`
	Color       string    `json:"color"`
}

type UpdateEventDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	AllDay      *bool      `json:"all_day"`
	Color       *string    `json:"color"`
}
