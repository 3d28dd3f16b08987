// Package catalog holds the fixed, ordered list of portfolio projects.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"vpapic.dev/internal/models"
)

var (
	// ErrNotFound is returned by Lookup for an unknown slug. It is an expected
	// outcome; callers render a fallback view.
	ErrNotFound = errors.New("project not found")

	ErrDuplicateID   = errors.New("duplicate project id")
	ErrDuplicateSlug = errors.New("duplicate project slug")
	ErrEmptySlug     = errors.New("project slug is empty")
	ErrInvalidSlug   = errors.New("project slug must be lowercase letters, digits and hyphens")
	ErrNoImages      = errors.New("project has no images")
)

// SlugPattern is the form every slug takes; routes match slugs with it.
const SlugPattern = `[a-z0-9]+(?:-[a-z0-9]+)*`

var slugRE = regexp.MustCompile(`^` + SlugPattern + `$`)

// Catalog is a read-only list of projects. Safe for concurrent readers.
type Catalog struct {
	projects []models.Project
}

// New validates the records and builds a catalog in the given order.
// Optional links that are empty strings are normalised to absent.
func New(projects []models.Project) (*Catalog, error) {
	ids := make(map[int]struct{}, len(projects))
	slugs := make(map[string]struct{}, len(projects))
	out := make([]models.Project, 0, len(projects))

	for _, p := range projects {
		if strings.TrimSpace(p.Slug) == "" {
			return nil, fmt.Errorf("project %d: %w", p.ID, ErrEmptySlug)
		}
		if !slugRE.MatchString(p.Slug) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, p.Slug)
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("project %q: %w: %d", p.Slug, ErrDuplicateID, p.ID)
		}
		if _, dup := slugs[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("project %q: %w", p.Slug, ErrNoImages)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}

		p.Tags = cloneStrings(p.Tags)
		p.Images = cloneStrings(p.Images)
		p.Features = cloneStrings(p.Features)
		p.GitHub = normalizeLink(p.GitHub)
		p.Live = normalizeLink(p.Live)
		p.Video = normalizeLink(p.Video)
		out = append(out, p)
	}

	return &Catalog{projects: out}, nil
}

// Lookup returns the project with the given slug, or ErrNotFound.
func (c *Catalog) Lookup(slug string) (models.Project, error) {
	for i := range c.projects {
		if c.projects[i].Slug == slug {
			return clone(c.projects[i]), nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
}

// All returns every project in catalog order.
func (c *Catalog) All() []models.Project {
	out := make([]models.Project, len(c.projects))
	for i := range c.projects {
		out[i] = clone(c.projects[i])
	}
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Slugs returns every slug in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.projects))
	for i := range c.projects {
		out[i] = c.projects[i].Slug
	}
	return out
}

// clone copies the slices so callers cannot reach the catalog's backing arrays.
func clone(p models.Project) models.Project {
	p.Tags = cloneStrings(p.Tags)
	p.Images = cloneStrings(p.Images)
	p.Features = cloneStrings(p.Features)
	p.GitHub = cloneLink(p.GitHub)
	p.Live = cloneLink(p.Live)
	p.Video = cloneLink(p.Video)
	return p
}

func cloneLink(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func normalizeLink(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
