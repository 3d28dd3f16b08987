package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

// Config holds all application configuration
type Config struct {
	ServerAddr    string
	DataPath      string
	AssetsDir     string
	AnalyticsDSN  string
	AnalyticsSalt string
	StatsToken    string
	SessionTTL    time.Duration
	LogLevel      string
	LogFormat     string
	OTLPEndpoint  string
	ServiceName   string
	Catalog       *catalog.Catalog
	Site          *models.Site
}

// Load reads the environment and the project and site data.
// Data comes from DATA_PATH when set, otherwise from the embedded defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getenv("SERVER_ADDR", ":8080"),
		DataPath:      os.Getenv("DATA_PATH"),
		AssetsDir:     getenv("ASSETS_DIR", "public"),
		AnalyticsDSN:  getenvAllowEmpty("ANALYTICS_DB", "portfolio.db"),
		AnalyticsSalt: os.Getenv("ANALYTICS_SALT"),
		StatsToken:    os.Getenv("STATS_TOKEN"),
		SessionTTL:    services.DefaultSessionTTL,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "console"),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:   getenv("OTEL_SERVICE_NAME", "portfolio"),
	}

	if v := os.Getenv("GALLERY_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid GALLERY_SESSION_TTL %q", v)
		}
		cfg.SessionTTL = ttl
	}

	data := content.Data()
	if cfg.DataPath != "" {
		data = os.DirFS(cfg.DataPath)
	}

	cat, err := loadCatalog(data)
	if err != nil {
		return nil, err
	}
	site, err := loadSite(data)
	if err != nil {
		return nil, err
	}
	cfg.Catalog = cat
	cfg.Site = site

	return cfg, nil
}

// loadCatalog reads projects.json and validates it into a catalog
func loadCatalog(data fs.FS) (*catalog.Catalog, error) {
	raw, err := fs.ReadFile(data, "projects.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load projects.json: %w", err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects.json: %w", err)
	}

	cat, err := catalog.New(projects.Projects)
	if err != nil {
		return nil, fmt.Errorf("invalid projects.json: %w", err)
	}
	return cat, nil
}

// loadSite reads site.json
func loadSite(data fs.FS) (*models.Site, error) {
	raw, err := fs.ReadFile(data, "site.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load site.json: %w", err)
	}

	var site models.Site
	if err := json.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site.json: %w", err)
	}
	return &site, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvAllowEmpty distinguishes an unset key from one set to ""
func getenvAllowEmpty(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
