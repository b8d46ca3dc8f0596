package main

import (
	"resty.dev/v3"

	"modelscout/catalog-api/internal/config"
	"modelscout/catalog-api/internal/domain/billing"
	"modelscout/catalog-api/internal/infrastructure/catalogcache"
	"modelscout/catalog-api/internal/infrastructure/upstream"
	"modelscout/catalog-api/internal/utils/httpclients"
)

func provideRestyClient(cfg *config.Config) *resty.Client {
	return httpclients.NewClient("catalog-upstream", cfg.HTTPTimeout)
}

func provideUpstreamClient(cfg *config.Config, client *resty.Client) *upstream.Client {
	return upstream.NewClient(client, cfg.CatalogURL)
}

func provideCatalogCache(cfg *config.Config, client *upstream.Client) *catalogcache.Cache {
	return catalogcache.NewCache(client, cfg.CatalogCacheTTL)
}

func provideLedger(cfg *config.Config) *billing.Ledger {
	overrides := make(map[billing.Operation]billing.MinorUnits)
	if cfg.ChargeOverrides != nil {
		for _, op := range []billing.Operation{
			billing.OpOverview,
			billing.OpLookup,
			billing.OpSearch,
			billing.OpTop,
			billing.OpCompare,
			billing.OpReport,
		} {
			if charge, ok := cfg.ChargeOverrides.ChargeFor(string(op)); ok {
				overrides[op] = billing.MinorUnits(charge)
			}
		}
	}
	return billing.NewLedger(overrides)
}
