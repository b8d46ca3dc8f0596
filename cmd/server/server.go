package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"modelscout/catalog-api/internal/config"
	"modelscout/catalog-api/internal/infrastructure/crontab"
	"modelscout/catalog-api/internal/infrastructure/logger"
	_ "modelscout/catalog-api/internal/infrastructure/metrics" // Register Prometheus metrics
	"modelscout/catalog-api/internal/infrastructure/observability"
	"modelscout/catalog-api/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
}

// @title ModelScout Catalog API
// @version 1.0
// @description Paid read-only endpoints that query, filter, rank and compare AI-model metadata from an upstream catalog.
// @BasePath /
func (application *Application) Start() error {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	return eg.Wait()
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	log, err = logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fallback := logger.GetLogger()
		fallback.Fatal().Err(err).Msg("configure logger")
	}
	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("catalog_url", cfg.CatalogURL).
		Dur("cache_ttl", cfg.CatalogCacheTTL).
		Msg("starting catalog-api")

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application, err := CreateApplication(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
