package routes

import (
	"io/fs"
	"net/http"
	"time"

	"mooddiary/diary/controllers"
	"mooddiary/diary/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the API, the health probe and the static pages.
func NewRouter(moodCtrl *controllers.MoodController, site fs.FS) chi.Router {
	healthCtrl := controllers.NewHealthController()
	calendarCtrl := controllers.NewCalendarController(moodCtrl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", healthCtrl.HealthCheck)
	r.Mount("/api/calendar", CalendarRoutes(calendarCtrl))
	r.Mount("/api", MoodRoutes(moodCtrl))

	r.With(middlewares.NoCache).Get("/history.html", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, site, "history.html")
	})
	r.Handle("/*", http.FileServerFS(site))

	return r
}
