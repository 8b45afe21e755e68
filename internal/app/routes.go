package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// adminRequestsPerMin caps admin calls per IP, including failed logins
const adminRequestsPerMin = 10

// Routes builds the HTTP handler
func (a *App) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(a.RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	router.Get("/", a.ServeIndex)
	router.Get("/healthz", a.Health)
	if a.staticFiles != nil {
		router.Handle("/static/*", http.FileServer(http.FS(a.staticFiles)))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(a.RateLimit)

		r.Get("/config", a.GetConfig)
		r.Get("/day", a.HandleDay)
		r.Get("/venues", a.ListVenues)
		r.Get("/venues/{id}", a.GetVenue)
		r.Get("/venues/{id}/day", a.HandleVenueDay)
		r.Get("/download", a.HandleDownload)
		r.Get("/subscribe/{id}", a.HandleSubscribe)

		// Admin routes (protected with Basic Auth)
		if a.auth != nil {
			r.With(httprate.LimitByIP(adminRequestsPerMin, time.Minute), a.auth.Require).
				Post("/admin/cache/flush", a.HandleCacheFlush)
		}
	})

	return router
}
