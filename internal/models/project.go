package models

// Project represents a portfolio project
type Project struct {
	ID              int      `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Tags            []string `json:"tags"`
	Images          []string `json:"images"`
	Features        []string `json:"features"`
	GitHub          *string  `json:"github,omitempty"`
	Live            *string  `json:"live,omitempty"`
	Video           *string  `json:"video,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// ProjectSummary is the card shown in project listings
type ProjectSummary struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cover       string   `json:"cover,omitempty"`
	Tags        []string `json:"tags"`
}

// Cover returns the first image, used as the card thumbnail
func (p Project) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Summary returns the listing form of the project
func (p Project) Summary() ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Cover:       p.Cover(),
		Tags:        p.Tags,
	}
}

// GitHubURL returns the source link if the project has one
func (p Project) GitHubURL() (string, bool) { return deref(p.GitHub) }

// LiveURL returns the live demo link if the project has one
func (p Project) LiveURL() (string, bool) { return deref(p.Live) }

// VideoURL returns the walkthrough video link if the project has one
func (p Project) VideoURL() (string, bool) { return deref(p.Video) }

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
