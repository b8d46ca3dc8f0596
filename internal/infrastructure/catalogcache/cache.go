// Package catalogcache holds the most recent catalog snapshot and
// refreshes it from upstream when stale.
package catalogcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"modelscout/catalog-api/internal/domain/catalog"
	"modelscout/catalog-api/internal/infrastructure/logger"
	"modelscout/catalog-api/internal/infrastructure/metrics"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

// DefaultTTL is the snapshot time-to-live when no explicit TTL is
// configured.
const DefaultTTL = 5 * time.Minute

// Fetcher supplies a full catalog from the upstream source.
type Fetcher interface {
	ListModels(ctx context.Context) ([]catalog.Model, error)
	Source() string
}

// Cache is the process-lifetime catalog snapshot. Refreshes are
// serialized behind a single flight: concurrent stale readers share one
// upstream fetch. A failed refresh falls back to the stale snapshot when
// one exists; with no snapshot the fetch error propagates.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	group   singleflight.Group

	mu       sync.RWMutex
	snapshot catalog.Snapshot

	now func() time.Time
}

func NewCache(fetcher Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetSnapshot returns the cached snapshot, refreshing it first when the
// TTL has elapsed or nothing has been fetched yet.
func (c *Cache) GetSnapshot(ctx context.Context) (catalog.Snapshot, error) {
	c.mu.RLock()
	snapshot := c.snapshot
	fresh := c.isFreshLocked()
	c.mu.RUnlock()
	if fresh {
		return snapshot, nil
	}
	return c.refresh(ctx)
}

// Refresh forces a fetch regardless of snapshot age, still deduplicated
// with any in-flight refresh. Used by the warm-refresh cron.
func (c *Cache) Refresh(ctx context.Context) (catalog.Snapshot, error) {
	c.Invalidate()
	return c.refresh(ctx)
}

// Invalidate expires the snapshot so the next read refreshes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot.FetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Cache) isFreshLocked() bool {
	return len(c.snapshot.Models) > 0 && c.now().Sub(c.snapshot.FetchedAt) < c.ttl
}

func (c *Cache) refresh(ctx context.Context) (catalog.Snapshot, error) {
	result, err, _ := c.group.Do("catalog", func() (any, error) {
		// Another waiter may have refreshed while this call queued.
		c.mu.RLock()
		if c.isFreshLocked() {
			snapshot := c.snapshot
			c.mu.RUnlock()
			return snapshot, nil
		}
		stale := c.snapshot
		c.mu.RUnlock()

		log := logger.GetLogger()
		start := time.Now()
		models, fetchErr := c.fetcher.ListModels(ctx)
		metrics.UpstreamFetchDuration.Observe(time.Since(start).Seconds())

		if fetchErr != nil {
			if len(stale.Models) > 0 {
				log.Warn().Err(fetchErr).
					Time("fetched_at", stale.FetchedAt).
					Msg("catalog refresh failed, serving stale snapshot")
				metrics.CacheRefreshesTotal.WithLabelValues("stale_fallback").Inc()
				return stale, nil
			}
			metrics.CacheRefreshesTotal.WithLabelValues("error").Inc()
			return catalog.Snapshot{}, platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, fetchErr, "catalog refresh failed with no cached snapshot")
		}

		snapshot := catalog.Snapshot{
			Models:    models,
			FetchedAt: c.now(),
			Source:    c.fetcher.Source(),
		}
		c.mu.Lock()
		c.snapshot = snapshot
		c.mu.Unlock()

		metrics.CacheRefreshesTotal.WithLabelValues("ok").Inc()
		log.Info().Int("models", len(models)).Msg("catalog cache refreshed")
		return snapshot, nil
	})
	if err != nil {
		return catalog.Snapshot{}, err
	}
	return result.(catalog.Snapshot), nil
}
