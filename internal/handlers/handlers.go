package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"vpapic.dev/internal/analytics"
	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/errs"
	"vpapic.dev/internal/middleware"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
	"vpapic.dev/internal/telemetry"
)

// Dependencies are the long-lived collaborators the routes use.
// Analytics and Tracing may be nil.
type Dependencies struct {
	Site       *models.Site
	AssetsDir  string
	StatsToken string
	Renderer   *content.Renderer
	Projects   *services.ProjectService
	Galleries  *services.GalleryService
	Analytics  *analytics.Store
	Tracing    *telemetry.Tracing
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.Tracing != nil {
		r.Use(d.Tracing.Middleware)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	if d.Analytics != nil {
		r.Use(d.Analytics.Middleware)
	}

	// Initialize handlers
	pageHandler := NewPageHandler(d.Renderer, d.Projects, d.Site, d.AssetsDir)
	projectHandler := NewProjectHandler(d.Projects)
	galleryHandler := NewGalleryHandler(d.Galleries)

	// Pages
	slug := "{slug:" + catalog.SlugPattern + "}"
	r.Get("/", pageHandler.Home)
	r.Get("/projects/"+slug, pageHandler.Project)
	r.Get("/projects/"+slug+"/gallery/{index}", pageHandler.Project)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Post("/projects/{slug}/gallery", galleryHandler.Open)

		r.Route("/gallery/{id}", func(r chi.Router) {
			r.Get("/", galleryHandler.Get)
			r.Post("/next", galleryHandler.Next)
			r.Post("/prev", galleryHandler.Prev)
			r.Post("/jump", galleryHandler.Jump)
			r.Delete("/", galleryHandler.Close)
		})

		if d.Analytics != nil && d.StatsToken != "" {
			r.Get("/stats", NewStatsHandler(d.Analytics, d.StatsToken).GetStats)
		}

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not found")
		})
	})

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(content.Static()))))

	// Anything else is a public asset or the fallback page
	r.NotFound(pageHandler.NotFound)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr maps err to a status through errs.ErrStatusMap
func respondErr(w http.ResponseWriter, err error) {
	status, message := errs.Status(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("")
	}
	respondError(w, status, message)
}
