package services

import (
	"errors"
	"fmt"

	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/gallery"
	"vpapic.dev/internal/models"
)

// ErrImageNotFound is returned when a gallery position does not exist for a project
var ErrImageNotFound = errors.New("image not found")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *catalog.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(c *catalog.Catalog) *ProjectService {
	return &ProjectService{catalog: c}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.All()
}

// Summaries returns the listing cards for all projects
func (s *ProjectService) Summaries() []models.ProjectSummary {
	all := s.catalog.All()
	out := make([]models.ProjectSummary, len(all))
	for i := range all {
		out[i] = all[i].Summary()
	}
	return out
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	p, err := s.catalog.Lookup(slug)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Link is an outbound link shown on the detail page
type Link struct {
	Label string
	URL   string
	Kind  string
}

// Thumbnail is one entry of the gallery strip
type Thumbnail struct {
	Index  int
	Src    string
	Active bool
}

// ProjectDetail is a project together with the gallery position being shown
type ProjectDetail struct {
	Project     models.Project
	Index       int
	Length      int
	Image       string
	HasControls bool
	PrevIndex   int
	NextIndex   int
	Thumbnails  []Thumbnail
	Links       []Link
	Video       string
	HasVideo    bool
}

// Detail builds the detail view of a project with image index selected
func (s *ProjectService) Detail(slug string, index int) (*ProjectDetail, error) {
	p, err := s.catalog.Lookup(slug)
	if err != nil {
		return nil, err
	}

	nav, err := gallery.At(len(p.Images), index)
	if err != nil {
		return nil, fmt.Errorf("%w: %s #%d", ErrImageNotFound, slug, index)
	}

	detail := &ProjectDetail{
		Project:     p,
		Index:       nav.Index(),
		Length:      nav.Len(),
		Image:       p.Images[nav.Index()],
		HasControls: nav.HasControls(),
		PrevIndex:   nav.Prev(),
		NextIndex:   nav.Next(),
		Thumbnails:  make([]Thumbnail, len(p.Images)),
	}
	for i, src := range p.Images {
		detail.Thumbnails[i] = Thumbnail{Index: i, Src: src, Active: i == nav.Index()}
	}

	if u, ok := p.GitHubURL(); ok {
		detail.Links = append(detail.Links, Link{Label: "View Source", URL: u, Kind: "source"})
	}
	if u, ok := p.LiveURL(); ok {
		detail.Links = append(detail.Links, Link{Label: "Live Demo", URL: u, Kind: "live"})
	}
	detail.Video, detail.HasVideo = p.VideoURL()

	return detail, nil
}
