// Package export writes the portfolio as a static site: one index.html per
// route plus the stylesheet, laid out so any file server can host it.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"vpapic.dev/internal/content"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

// Exporter renders every page of the site into a directory
type Exporter struct {
	renderer *content.Renderer
	projects *services.ProjectService
	site     *models.Site
	static   fs.FS

	// Progress, when set, is called after each written file with its path
	// relative to the output directory
	Progress func(path string)
}

// New creates an Exporter
func New(rd *content.Renderer, ps *services.ProjectService, site *models.Site) *Exporter {
	return &Exporter{renderer: rd, projects: ps, site: site, static: content.Static()}
}

// Export writes the site into outDir and returns the number of files written
func (e *Exporter) Export(outDir string) (int, error) {
	written := 0
	write := func(rel string, data []byte) error {
		path := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		written++
		if e.Progress != nil {
			e.Progress(rel)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := e.renderer.Home(&buf, content.HomePage{Site: e.site, Projects: e.projects.Summaries()}); err != nil {
		return written, fmt.Errorf("render home: %w", err)
	}
	if err := write("index.html", buf.Bytes()); err != nil {
		return written, err
	}

	for _, p := range e.projects.GetAll() {
		for i := range p.Images {
			detail, err := e.projects.Detail(p.Slug, i)
			if err != nil {
				return written, err
			}
			buf.Reset()
			if err := e.renderer.Project(&buf, content.ProjectPage{Site: e.site, Detail: detail}); err != nil {
				return written, fmt.Errorf("render %s #%d: %w", p.Slug, i, err)
			}
			if err := write(pagePath(p.Slug, i), buf.Bytes()); err != nil {
				return written, err
			}
		}
	}

	buf.Reset()
	if err := e.renderer.NotFound(&buf, content.NotFoundPage{Site: e.site, Title: "Page Not Found", BackHref: "/"}); err != nil {
		return written, fmt.Errorf("render 404: %w", err)
	}
	if err := write("404.html", buf.Bytes()); err != nil {
		return written, err
	}

	err := fs.WalkDir(e.static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(e.static, path)
		if err != nil {
			return err
		}
		return write("static/"+path, data)
	})
	return written, err
}

// pagePath mirrors the server routes: position 0 is the project page itself
func pagePath(slug string, index int) string {
	if index == 0 {
		return "projects/" + slug + "/index.html"
	}
	return "projects/" + slug + "/gallery/" + strconv.Itoa(index) + "/index.html"
}
