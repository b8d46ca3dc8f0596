package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Global singleton so infrastructure packages can read config without wiring
var globalConfig *Config

// Config holds all environment backed configuration for catalog-api.
type Config struct {
	// HTTP Server
	HTTPPort int `env:"PORT" envDefault:"3000"`

	// Upstream catalog source
	CatalogURL      string        `env:"CATALOG_URL" envDefault:"https://openrouter.ai/api/v1/models"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// Warm refresh
	WarmRefreshEnabled         bool `env:"WARM_REFRESH_ENABLED" envDefault:"true"`
	WarmRefreshIntervalMinutes int  `env:"WARM_REFRESH_INTERVAL_MINUTES" envDefault:"5"`

	// Call charges
	ChargeConfigFile string `env:"CHARGE_CONFIG_FILE"`
	ChargeOverrides  *ChargeOverrides

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"catalog-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"modelscout"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
// A local .env file is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CatalogURL = strings.TrimSpace(cfg.CatalogURL)
	if _, err := url.ParseRequestURI(cfg.CatalogURL); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_URL: %w", err)
	}

	if cfg.CatalogCacheTTL <= 0 {
		return nil, fmt.Errorf("CATALOG_CACHE_TTL must be positive, got %s", cfg.CatalogCacheTTL)
	}

	if cfg.ChargeConfigFile != "" {
		overrides, err := LoadChargeOverrides(cfg.ChargeConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load charge config: %w", err)
		}
		cfg.ChargeOverrides = overrides
	}

	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the config loaded by the last Load call, nil before that.
func GetGlobal() *Config {
	return globalConfig
}
