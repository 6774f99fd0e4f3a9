// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vrsandeep/nijiero-go/internal/core"
)

// Server holds the dependencies for our API.
type Server struct {
	app *core.App
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{app: app}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/providers", s.handleListProviders)
		r.Route("/providers/{providerID}", func(r chi.Router) {
			r.Get("/filters", s.handleProviderFilters)
			r.Get("/popular", s.handleProviderPopular)
			r.Get("/latest", s.handleProviderLatest)
			r.Get("/search", s.handleProviderSearch)
			r.Get("/series", s.handleProviderSeries)
			r.Get("/chapters", s.handleProviderChapters)
			r.Get("/pages", s.handleProviderPages)
			r.Get("/proxy", s.handleProxyResource)
		})
	})

	return r
}
