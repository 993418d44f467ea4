package config

import (
	"errors"
	"fmt"
	"os"

	"retrofit-risk/internal/simulation"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk service configuration shape (YAML). Every field is
// optional; zero values fall back to the built-in defaults.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Forecasts  ForecastsConfig  `yaml:"forecasts"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type ForecastsConfig struct {
	// File points at an external forecast-tables YAML. Empty means the
	// embedded defaults.
	File string `yaml:"file"`
}

type SimulationConfig struct {
	// NSims and Seed apply when a request omits them.
	NSims int    `yaml:"n_sims"`
	Seed  uint64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:     ServerConfig{Port: "8080"},
		Simulation: SimulationConfig{NSims: simulation.DefaultNSims, Seed: simulation.DefaultSeed},
	}
}

// Load reads, defaults, and validates a config file. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config over the defaults, but does not
// validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Simulation.NSims == 0 {
		c.Simulation.NSims = simulation.DefaultNSims
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.NSims < simulation.MinNSims || c.Simulation.NSims > simulation.MaxNSims {
		return fmt.Errorf("simulation.n_sims must be in [%d, %d], got %d",
			simulation.MinNSims, simulation.MaxNSims, c.Simulation.NSims)
	}
	return nil
}
