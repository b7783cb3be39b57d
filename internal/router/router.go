// Package router sets up all HTTP routes and middleware chains for the
// siteforge server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(sites *handlers.Sites) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	// Wrong verb on a known route answers with the shared JSON error shape.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	// Health check.
	r.Get("/health", healthHandler)

	// Website lifecycle.
	r.Post("/generate", sites.Generate)
	r.Post("/publish", sites.Publish)
	r.Put("/update", sites.Update)
	r.Get("/my-sites", sites.MySites)
	r.Get("/site", sites.Render)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
