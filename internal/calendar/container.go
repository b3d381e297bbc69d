package calendar

import "gorm.io/gorm"

type CalendarContainer struct {
	Handler *Handler
	Service EventService
	Repo    EventRepository
}

func NewCalendarContainer(db *gorm.DB) *CalendarContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CalendarContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
