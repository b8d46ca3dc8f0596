//go:build wireinject

package main

import (
	"github.com/google/wire"

	"modelscout/catalog-api/internal/config"
	"modelscout/catalog-api/internal/infrastructure/crontab"
	"modelscout/catalog-api/internal/interfaces/httpserver"
	"modelscout/catalog-api/internal/interfaces/httpserver/handlers/cataloghandler"
	"modelscout/catalog-api/internal/interfaces/httpserver/routes/v1/catalogroute"
)

func CreateApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		provideRestyClient,
		provideUpstreamClient,
		provideCatalogCache,
		provideLedger,
		cataloghandler.NewCatalogHandler,
		catalogroute.NewCatalogRoute,
		httpserver.NewHTTPServer,
		crontab.NewCrontab,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
