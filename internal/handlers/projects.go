package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vpapic.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Summaries())
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}
