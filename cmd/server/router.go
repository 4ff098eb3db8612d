package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/phrazzld/customer-api/internal/api/middleware"
	"github.com/phrazzld/customer-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(apimiddleware.TraceID(app.logger))

	if app.config.RateLimit.Enabled {
		limiter := apimiddleware.NewRateLimiter(
			app.config.RateLimit.Requests,
			time.Duration(app.config.RateLimit.WindowMinutes)*time.Minute,
			app.logger,
		)
		r.Use(limiter.Handler)
	}

	r.Route("/api/customers", func(r chi.Router) {
		if app.cache != nil {
			r.Use(apimiddleware.ResponseCaching(
				app.cache,
				time.Duration(app.config.Cache.TTLSeconds)*time.Second,
				app.logger,
			))
		}

		r.Post("/", app.handler.Create)
		r.Get("/", app.handler.List)
		r.Get("/{id}", app.handler.GetByID)
		r.Put("/{id}", app.handler.Update)
		r.Delete("/{id}", app.handler.Delete)
	})

	r.Get("/health", app.healthCheck)

	return r
}

// healthCheck reports liveness together with process uptime.
func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(app.startedAt).String(),
	})
}
