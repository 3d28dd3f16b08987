// Package content embeds the site's default data, page templates and
// stylesheet, and renders pages from them.
package content

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

//go:embed data/*.json
var dataFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Data returns the embedded data directory (projects.json, site.json)
func Data() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the embedded stylesheet directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HomePage is the data for the landing page
type HomePage struct {
	Site     *models.Site
	Projects []models.ProjectSummary
}

// ProjectPage is the data for a project detail page
type ProjectPage struct {
	Site   *models.Site
	Detail *services.ProjectDetail
}

// NotFoundPage is the fallback view for unknown projects and images
type NotFoundPage struct {
	Site     *models.Site
	Title    string
	Message  string
	BackHref string
}

// Renderer executes the page templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Home renders the landing page
func (r *Renderer) Home(w io.Writer, page HomePage) error {
	return r.tmpl.ExecuteTemplate(w, "home", page)
}

// Project renders a project detail page
func (r *Renderer) Project(w io.Writer, page ProjectPage) error {
	return r.tmpl.ExecuteTemplate(w, "project", page)
}

// NotFound renders the fallback page
func (r *Renderer) NotFound(w io.Writer, page NotFoundPage) error {
	return r.tmpl.ExecuteTemplate(w, "notfound", page)
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"galleryPath": func(slug string, index int) string {
		if index == 0 {
			return "/projects/" + slug
		}
		return fmt.Sprintf("/projects/%s/gallery/%d", slug, index)
	},
	"delay": func(i int) string {
		return fmt.Sprintf("%dms", i*100)
	},
	"lower": strings.ToLower,
}
