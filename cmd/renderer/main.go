package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/satcom-forecast/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/satcom-forecast/internal/adapter/kafka"
	"github.com/couchcryptid/satcom-forecast/internal/config"
	"github.com/couchcryptid/satcom-forecast/internal/format"
	"github.com/couchcryptid/satcom-forecast/internal/observability"
	"github.com/couchcryptid/satcom-forecast/internal/pipeline"
	"github.com/couchcryptid/satcom-forecast/internal/split"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger, metrics)
	renderer := pipeline.NewRenderer(pipeline.Options{
		DefaultMode:   format.Mode(cfg.DefaultMode),
		DefaultDevice: split.Device(cfg.DefaultDevice),
		CacheSize:     cfg.RenderCacheSize,
	}, logger, metrics)
	logger.Info("renderer configured",
		"default_mode", cfg.DefaultMode,
		"default_device", cfg.DefaultDevice,
		"cache_size", cfg.RenderCacheSize,
	)

	p := pipeline.New(reader, renderer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return p.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
