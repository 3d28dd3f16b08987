package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	renderer       *content.Renderer
	projectService *services.ProjectService
	site           *models.Site
	assets         http.FileSystem
}

// NewPageHandler creates a new PageHandler; assetsDir holds the public
// images referenced by the catalog
func NewPageHandler(rd *content.Renderer, ps *services.ProjectService, site *models.Site, assetsDir string) *PageHandler {
	h := &PageHandler{renderer: rd, projectService: ps, site: site}
	if assetsDir != "" {
		h.assets = http.Dir(assetsDir)
	}
	return h
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.renderer.Home(&buf, content.HomePage{
		Site:     h.site,
		Projects: h.projectService.Summaries(),
	})
	h.writeHTML(w, http.StatusOK, &buf, err)
}

// Project handles GET /projects/{slug} and /projects/{slug}/gallery/{index}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	index := 0
	if raw := chi.URLParam(r, "index"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil || strconv.Itoa(i) != raw {
			h.notFound(w, "Image Not Found", "That screenshot does not exist.", "/projects/"+slug)
			return
		}
		index = i
	}

	detail, err := h.projectService.Detail(slug, index)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		h.notFound(w, "Project Not Found", "", "/")
		return
	case errors.Is(err, services.ErrImageNotFound):
		h.notFound(w, "Image Not Found", "That screenshot does not exist.", "/projects/"+slug)
		return
	case err != nil:
		log.Error().Err(err).Str("slug", slug).Msg("failed to build project detail")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = h.renderer.Project(&buf, content.ProjectPage{Site: h.site, Detail: detail})
	h.writeHTML(w, http.StatusOK, &buf, err)
}

// NotFound serves a public asset if one exists at the path, otherwise the
// fallback page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.assets != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		if f, err := h.assets.Open(r.URL.Path); err == nil {
			defer f.Close()
			if info, err := f.Stat(); err == nil && !info.IsDir() {
				http.ServeContent(w, r, info.Name(), info.ModTime(), f)
				return
			}
		}
	}
	h.notFound(w, "Page Not Found", "", "/")
}

func (h *PageHandler) notFound(w http.ResponseWriter, title, message, back string) {
	var buf bytes.Buffer
	err := h.renderer.NotFound(&buf, content.NotFoundPage{
		Site:     h.site,
		Title:    title,
		Message:  message,
		BackHref: back,
	})
	h.writeHTML(w, http.StatusNotFound, &buf, err)
}

func (h *PageHandler) writeHTML(w http.ResponseWriter, status int, buf *bytes.Buffer, err error) {
	if err != nil {
		log.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Msg("failed to write page")
	}
}
