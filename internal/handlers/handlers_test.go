package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpapic.dev/internal/analytics"
	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

func strPtr(s string) *string { return &s }

type testServer struct {
	handler http.Handler
	store   *analytics.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cat, err := catalog.New([]models.Project{
		{
			ID: 1, Slug: "tick", Title: "Tick",
			Description: "Time tracking", FullDescription: "Tick tracks time.",
			Tags:     []string{"Angular", "Nestjs"},
			Images:   []string{"/projects/tick.png", "/projects/main.png", "/projects/login.png", "/projects/project.png"},
			Features: []string{"Invoicing system"},
			GitHub:   strPtr("https://github.com/example/tick"),
		},
		{
			ID: 2, Slug: "sledat", Title: "Sledat",
			Images: []string{"/projects/sledat.png"},
			Live:   strPtr("https://sledat.com"),
		},
	})
	require.NoError(t, err)

	renderer, err := content.NewRenderer()
	require.NoError(t, err)

	store, err := analytics.Open(":memory:", "salt")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "projects"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "projects", "tick.png"), []byte("PNGDATA"), 0644))

	ps := services.NewProjectService(cat)
	site := &models.Site{Profile: models.Profile{Name: "Test Owner", Email: "owner@example.com"}}

	return &testServer{
		handler: SetupRoutes(Dependencies{
			Site:       site,
			AssetsDir:  assets,
			StatsToken: "secret",
			Renderer:   renderer,
			Projects:   ps,
			Galleries:  services.NewGalleryService(ps, 0),
			Analytics:  store,
		}),
		store: store,
	}
}

func (s *testServer) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestPages(t *testing.T) {
	s := newTestServer(t)

	t.Run("home", func(t *testing.T) {
		w := s.do(http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `href="/projects/tick"`)
		assert.Contains(t, w.Body.String(), `href="/projects/sledat"`)
	})

	t.Run("project detail starts at first image", func(t *testing.T) {
		w := s.do(http.MethodGet, "/projects/tick", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `class="gallery-image" src="/projects/tick.png"`)
		assert.Contains(t, w.Body.String(), "1 / 4")
	})

	t.Run("gallery position", func(t *testing.T) {
		w := s.do(http.MethodGet, "/projects/tick/gallery/2", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `class="gallery-image" src="/projects/login.png"`)
		assert.Contains(t, w.Body.String(), "3 / 4")
	})

	t.Run("unknown project renders fallback", func(t *testing.T) {
		w := s.do(http.MethodGet, "/projects/nonexistent", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Project Not Found")
		assert.Contains(t, w.Body.String(), `href="/"`)
	})

	t.Run("gallery index out of range", func(t *testing.T) {
		for _, path := range []string{"/projects/tick/gallery/4", "/projects/tick/gallery/-1", "/projects/tick/gallery/x", "/projects/tick/gallery/01"} {
			w := s.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.Contains(t, w.Body.String(), "Image Not Found", path)
		}
	})

	t.Run("public asset", func(t *testing.T) {
		w := s.do(http.MethodGet, "/projects/tick.png", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "PNGDATA", w.Body.String())
	})

	t.Run("missing asset", func(t *testing.T) {
		w := s.do(http.MethodGet, "/projects/ghost.png", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	})

	t.Run("stylesheet", func(t *testing.T) {
		w := s.do(http.MethodGet, "/static/site.css", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "@keyframes fade-up")
	})
}

func TestProjectAPI(t *testing.T) {
	s := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/projects", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []models.ProjectSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "tick", got[0].Slug)
		assert.Equal(t, "/projects/tick.png", got[0].Cover)
	})

	t.Run("get", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/projects/sledat", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "https://sledat.com", got["live"])
		assert.NotContains(t, got, "github", "absent links are omitted")
	})

	t.Run("get unknown", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/projects/nonexistent", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "project not found"}`, w.Body.String())
	})

	t.Run("health", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
	})

	t.Run("unknown api route", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/nothing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "not found"}`, w.Body.String())
	})
}

func TestGalleryAPI(t *testing.T) {
	s := newTestServer(t)

	decode := func(t *testing.T, w *httptest.ResponseRecorder) services.GalleryState {
		t.Helper()
		var st services.GalleryState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
		return st
	}

	w := s.do(http.MethodPost, "/api/projects/tick/gallery", "")
	require.Equal(t, http.StatusCreated, w.Code)
	st := decode(t, w)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, 4, st.Length)
	base := "/api/gallery/" + st.ID

	for want := 1; want <= 3; want++ {
		w = s.do(http.MethodPost, base+"/next", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, decode(t, w).Index)
	}
	w = s.do(http.MethodPost, base+"/next", "")
	assert.Equal(t, 0, decode(t, w).Index)

	w = s.do(http.MethodPost, base+"/prev", "")
	assert.Equal(t, 3, decode(t, w).Index)

	w = s.do(http.MethodPost, base+"/jump", `{"index": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/projects/main.png", decode(t, w).Image)

	w = s.do(http.MethodPost, base+"/jump", `{"index": 9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, base+"/jump", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Index)

	w = s.do(http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/projects/nonexistent/gallery", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsAPI(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/", "")
	s.do(http.MethodGet, "/projects/tick", "")
	s.do(http.MethodGet, "/projects/tick", "", "DNT", "1")
	s.do(http.MethodGet, "/projects/nonexistent", "")
	s.do(http.MethodGet, "/projects/tick.png", "")

	w := s.do(http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/stats", "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/stats", "", "Authorization", "Bearer secret")
	require.Equal(t, http.StatusOK, w.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.TotalVisits)
	assert.EqualValues(t, 1, stats.UniqueVisitors)
}
