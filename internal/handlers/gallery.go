package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vpapic.dev/internal/services"
)

// GalleryHandler exposes gallery sessions over JSON
type GalleryHandler struct {
	galleryService *services.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(gs *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

// Open handles POST /api/projects/{slug}/gallery
func (h *GalleryHandler) Open(w http.ResponseWriter, r *http.Request) {
	state, err := h.galleryService.Open(chi.URLParam(r, "slug"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, state)
}

// Get handles GET /api/gallery/{id}
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.galleryService.Get(chi.URLParam(r, "id")))
}

// Next handles POST /api/gallery/{id}/next
func (h *GalleryHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.galleryService.Next(chi.URLParam(r, "id")))
}

// Prev handles POST /api/gallery/{id}/prev
func (h *GalleryHandler) Prev(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.galleryService.Prev(chi.URLParam(r, "id")))
}

// Jump handles POST /api/gallery/{id}/jump with body {"index": n}
func (h *GalleryHandler) Jump(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index *int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respond(w)(h.galleryService.Jump(chi.URLParam(r, "id"), *req.Index))
}

// Close handles DELETE /api/gallery/{id}
func (h *GalleryHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.galleryService.Close(chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GalleryHandler) respond(w http.ResponseWriter) func(services.GalleryState, error) {
	return func(state services.GalleryState, err error) {
		if err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}
