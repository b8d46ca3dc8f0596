package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"modelscout/catalog-api/internal/infrastructure/logger"
)

// ChargeOverrides maps operation names to per-call charges in minor
// currency units, overriding the compiled-in defaults.
type ChargeOverrides struct {
	charges map[string]int64
}

// ChargeFor returns the override for an operation, if one is configured.
func (c *ChargeOverrides) ChargeFor(operation string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	charge, ok := c.charges[strings.TrimSpace(operation)]
	return charge, ok
}

type chargeConfigDocument struct {
	Charges map[string]int64 `yaml:"charges"`
}

// LoadChargeOverrides parses the yaml file at the provided path.
func LoadChargeOverrides(path string) (*ChargeOverrides, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("charge config path is empty")
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read charge config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading charge config file")

	var doc chargeConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse charge config %q: %w", cleanPath, err)
	}

	charges := make(map[string]int64, len(doc.Charges))
	for operation, charge := range doc.Charges {
		operation = strings.TrimSpace(operation)
		if operation == "" {
			continue
		}
		if charge < 0 {
			return nil, fmt.Errorf("charge for %q is negative", operation)
		}
		charges[operation] = charge
	}

	return &ChargeOverrides{charges: charges}, nil
}
