package content

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

func loadEmbedded(t *testing.T) (*catalog.Catalog, *models.Site) {
	t.Helper()

	raw, err := fs.ReadFile(Data(), "projects.json")
	require.NoError(t, err)
	var list models.ProjectList
	require.NoError(t, json.Unmarshal(raw, &list))
	cat, err := catalog.New(list.Projects)
	require.NoError(t, err)

	raw, err = fs.ReadFile(Data(), "site.json")
	require.NoError(t, err)
	var site models.Site
	require.NoError(t, json.Unmarshal(raw, &site))

	return cat, &site
}

func TestEmbeddedCatalog(t *testing.T) {
	cat, site := loadEmbedded(t)

	assert.Equal(t, []string{"iradsys", "tick", "ecitera", "sledat"}, cat.Slugs())
	tick, err := cat.Lookup("tick")
	require.NoError(t, err)
	assert.Len(t, tick.Images, 4)

	assert.Equal(t, "Vuk Papić", site.Profile.Name)
	assert.Len(t, site.Experience, 4)
}

func TestStaticStylesheet(t *testing.T) {
	_, err := fs.Stat(Static(), "site.css")
	assert.NoError(t, err)
}

func TestRenderer(t *testing.T) {
	cat, site := loadEmbedded(t)
	ps := services.NewProjectService(cat)
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("home", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Home(&buf, HomePage{Site: site, Projects: ps.Summaries()}))
		out := buf.String()
		assert.Contains(t, out, "Featured Projects")
		assert.Contains(t, out, `href="/projects/tick"`)
		assert.Contains(t, out, "Uscom d.o.o")
		assert.Contains(t, out, "mailto:your.email@example.com")
	})

	t.Run("project with gallery", func(t *testing.T) {
		d, err := ps.Detail("tick", 3)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Project(&buf, ProjectPage{Site: site, Detail: d}))
		out := buf.String()
		assert.Contains(t, out, `src="/projects/time-track-project.png"`)
		assert.Contains(t, out, `href="/projects/tick/gallery/2#screenshots"`)
		assert.Contains(t, out, `href="/projects/tick#screenshots" rel="next"`)
		assert.Contains(t, out, "4 / 4")
		assert.Contains(t, out, "View Source")
		assert.Contains(t, out, "Video Coming Soon")
	})

	t.Run("single image has no controls", func(t *testing.T) {
		d, err := ps.Detail("sledat", 0)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Project(&buf, ProjectPage{Site: site, Detail: d}))
		out := buf.String()
		assert.NotContains(t, out, "gallery-controls")
		assert.NotContains(t, out, "View Source")
		assert.Contains(t, out, "Live Demo")
	})

	t.Run("not found", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.NotFound(&buf, NotFoundPage{Title: "Project Not Found", BackHref: "/"}))
		assert.Contains(t, buf.String(), "Project Not Found")
		assert.Contains(t, buf.String(), "Go Back")
	})
}
