// Package cataloghandler glues the cached snapshot to the pure query
// operations.
package cataloghandler

import (
	"context"

	"modelscout/catalog-api/internal/domain/catalog"
	"modelscout/catalog-api/internal/infrastructure/catalogcache"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

type CatalogHandler struct {
	cache *catalogcache.Cache
}

func NewCatalogHandler(cache *catalogcache.Cache) *CatalogHandler {
	return &CatalogHandler{cache: cache}
}

func (h *CatalogHandler) Overview(ctx context.Context) (catalog.OverviewResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.OverviewResult{}, err
	}
	return catalog.Overview(snapshot), nil
}

func (h *CatalogHandler) Lookup(ctx context.Context, modelID string) (catalog.LookupResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.LookupResult{}, err
	}
	return catalog.Lookup(snapshot.Models, modelID), nil
}

func (h *CatalogHandler) Search(ctx context.Context, params catalog.SearchParams) (catalog.SearchResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.SearchResult{}, err
	}
	return catalog.Search(snapshot.Models, params), nil
}

func (h *CatalogHandler) Top(ctx context.Context, params catalog.TopParams) (catalog.TopResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.TopResult{}, err
	}
	return catalog.Top(snapshot.Models, params), nil
}

func (h *CatalogHandler) Compare(ctx context.Context, modelIDs []string) (catalog.CompareResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.CompareResult{}, err
	}
	return catalog.Compare(snapshot.Models, modelIDs), nil
}

func (h *CatalogHandler) Report(ctx context.Context, modelID string) (catalog.ReportResult, error) {
	snapshot, err := h.snapshot(ctx)
	if err != nil {
		return catalog.ReportResult{}, err
	}
	return catalog.Report(snapshot.Models, modelID), nil
}

func (h *CatalogHandler) snapshot(ctx context.Context) (catalog.Snapshot, error) {
	snapshot, err := h.cache.GetSnapshot(ctx)
	if err != nil {
		return catalog.Snapshot{}, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "catalog unavailable")
	}
	return snapshot, nil
}
