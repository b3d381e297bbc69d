package router

import (
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rafaelpontes/focushub/internal/auth"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/cycle"
	"github.com/rafaelpontes/focushub/internal/dashboard"
	googlecalendar "github.com/rafaelpontes/focushub/internal/google_calendar"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
	"github.com/rafaelpontes/focushub/internal/user"
)

type RouterConfig struct {
	UserHandler           *user.Handler
	ProjectHandler        *project.Handler
	TaskHandler           *task.Handler
	CalendarHandler       *calendar.Handler
	TimeEntryHandler      *timeentry.Handler
	CycleHandler          *cycle.Handler
	DashboardHandler      *dashboard.Handler
	GoogleCalendarHandler *googlecalendar.Handler
}

func allowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(raw, ",")
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// Google redirects here without a session cookie; the signed state token
	// identifies the user.
	r.Get("/integrations/google/callback", cfg.GoogleCalendarHandler.Callback)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/projects", project.Routes(cfg.ProjectHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
		r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
		r.Mount("/time", timeentry.Routes(cfg.TimeEntryHandler))
		r.Mount("/cycles", cycle.Routes(cfg.CycleHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/integrations/google", googlecalendar.Routes(cfg.GoogleCalendarHandler))
	})

	return r
}
