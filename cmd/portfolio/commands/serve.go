package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vpapic.dev/internal/analytics"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/handlers"
	"vpapic.dev/internal/services"
	"vpapic.dev/internal/telemetry"
)

const (
	sweepInterval   = time.Minute
	cleanupInterval = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

var serveAddr string

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio website",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.New(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	var store *analytics.Store
	if cfg.AnalyticsDSN != "" {
		store, err = analytics.Open(cfg.AnalyticsDSN, cfg.AnalyticsSalt)
		if err != nil {
			return err
		}
		defer store.Close()
		go store.Run(ctx, cleanupInterval, analytics.DefaultRetention)
		log.Info().Str("db", cfg.AnalyticsDSN).Msg("visitor analytics enabled, IPs are stored hashed")
	}

	renderer, err := content.NewRenderer()
	if err != nil {
		return err
	}

	projectService := services.NewProjectService(cfg.Catalog)
	galleryService := services.NewGalleryService(projectService, cfg.SessionTTL)
	go galleryService.Run(ctx, sweepInterval)

	srv := &http.Server{
		Addr: cfg.ServerAddr,
		Handler: handlers.SetupRoutes(handlers.Dependencies{
			Site:       cfg.Site,
			AssetsDir:  cfg.AssetsDir,
			StatsToken: cfg.StatsToken,
			Renderer:   renderer,
			Projects:   projectService,
			Galleries:  galleryService,
			Analytics:  store,
			Tracing:    tracing,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.ServerAddr).
			Int("projects", cfg.Catalog.Len()).
			Bool("tracing", tracing.Enabled()).
			Msg("portfolio listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
