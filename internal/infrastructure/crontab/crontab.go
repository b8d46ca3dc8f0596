package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"modelscout/catalog-api/internal/config"
	"modelscout/catalog-api/internal/infrastructure/catalogcache"
	"modelscout/catalog-api/internal/infrastructure/logger"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

const (
	defaultRefreshInterval = 5                // in minutes
	cronJobTimeout         = 2 * time.Minute // per refresh attempt
)

// Crontab keeps the catalog cache warm so paid calls rarely hit a cold
// snapshot. Refresh failures are logged, never fatal.
type Crontab struct {
	ctab  *crontab.Crontab
	cache *catalogcache.Cache
}

func NewCrontab(cache *catalogcache.Cache) *Crontab {
	return &Crontab{
		ctab:  crontab.New(),
		cache: cache,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// execute once on server start
	c.warmRefresh(ctx)

	cfg := config.GetGlobal()
	if cfg == nil || !cfg.WarmRefreshEnabled {
		log.Info().Msg("warm refresh disabled")
		<-ctx.Done()
		return nil
	}

	interval := cfg.WarmRefreshIntervalMinutes
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	cronExpr := fmt.Sprintf("*/%d * * * *", interval)
	if err := c.ctab.AddJob(cronExpr, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), cronJobTimeout)
		defer cancel()
		c.warmRefresh(jobCtx)
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add warm refresh job")
	}

	log.Info().Int("interval_minutes", interval).Msg("warm refresh scheduled")
	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) warmRefresh(ctx context.Context) {
	log := logger.GetLogger()
	snapshot, err := c.cache.Refresh(ctx)
	if err != nil {
		log.Error().Err(err).Msg("warm refresh failed")
		return
	}
	log.Debug().Int("models", len(snapshot.Models)).Msg("warm refresh completed")
}
