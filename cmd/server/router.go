package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/resumeforge/rewrite-api/internal/api"
	apiMiddleware "github.com/resumeforge/rewrite-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Non-POST methods and CORS preflight requests are handled
// entirely here; they never reach the rewrite pipeline.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	rewriteHandler := api.NewRewriteHandler(app.rewrite, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/regenerate", rewriteHandler.Regenerate)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
