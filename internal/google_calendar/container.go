package googlecalendar

import (
	"os"

	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
)

type GoogleCalendarContainer struct {
	Handler *Handler
	Service SyncService
}

func NewGoogleCalendarContainer(
	userRepo user.UserRepository,
	eventService calendar.EventService,
) *GoogleCalendarContainer {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{gcal.CalendarEventsReadonlyScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}

	service := NewSyncService(userRepo, eventService, oauthConfig)
	handler := NewHandler(service)

	return &GoogleCalendarContainer{
		Handler: handler,
		Service: service,
	}
}
