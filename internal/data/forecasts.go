// Package data loads the three-scenario market forecast tables. The tables
// ship embedded in the binary as a versioned YAML file; deployments can point
// at an external file to update forecasts without recompiling.
package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"retrofit-risk/internal/model"
)

//go:embed forecasts/default.yaml
var defaultForecasts []byte

// forecastFile is the on-disk (and embedded) shape of the forecast tables.
type forecastFile struct {
	Version   int                   `yaml:"version"`
	Forecasts model.MarketForecasts `yaml:",inline"`
}

// LoadForecasts reads and validates forecast tables from path, or the
// embedded defaults when path is empty. Call once at startup; a validation
// failure must prevent service start.
func LoadForecasts(path string) (*model.MarketForecasts, error) {
	raw := defaultForecasts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read forecasts file: %w", err)
		}
		raw = b
	}
	return parseForecasts(raw)
}

func parseForecasts(raw []byte) (*model.MarketForecasts, error) {
	var file forecastFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse forecasts file: %w", err)
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported forecasts file version %d", file.Version)
	}
	if err := file.Forecasts.Validate(); err != nil {
		return nil, err
	}
	return &file.Forecasts, nil
}

// DefaultForecastsPath resolves the optional external forecast file.
func DefaultForecastsPath() string {
	return os.Getenv("FORECASTS_FILE")
}
