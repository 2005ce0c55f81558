package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taskboard/taskboard-api/internal/api"
	apimiddleware "github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/platform/ratelimit"
)

// setupRouter builds the chi router with the full middleware stack and
// all routes. Rate limiting applies to the /api/users group only; the
// list endpoints sit behind their output-cache policies.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.RequestLogger(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(apimiddleware.Recovery(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	userHandler := api.NewUserHandler(app.store, app.logger)
	taskHandler := api.NewTaskHandler(app.store, app.logger)
	systemHandler := api.NewSystemHandler(app.store)

	rateLimited := ratelimit.Middleware(ratelimit.Options{
		Store:      app.limiterStore,
		Stats:      app.limiterStats,
		RetryAfter: time.Duration(app.config.RateLimit.WindowSeconds) * time.Second,
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Use(rateLimited)
			r.With(app.usersCache.Middleware).Get("/", userHandler.List)
			r.With(app.usersCache.Middleware).Get("/{id}", userHandler.Get)
			r.Post("/", userHandler.Create)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.With(app.tasksCache.Middleware).Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Put("/{id}", taskHandler.Update)
		})

		r.Get("/stats", systemHandler.Stats)
		r.Get("/test/unhandled-exception", systemHandler.PanicProbe)
	})

	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
