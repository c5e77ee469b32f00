package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkadlec/grafy/properties"
)

// Config carries the optional defaults read from a YAML config file.
type Config struct {
	// PlanarityLimit is the node ceiling for the combinatorial planarity
	// search; 0 keeps the built-in default.
	PlanarityLimit int `yaml:"planarity_limit"`

	// ValidateEndpoints makes graph loading fail on edges that reference
	// undeclared nodes instead of creating them implicitly.
	ValidateEndpoints bool `yaml:"validate_endpoints"`
}

// loadConfig reads path when given; a missing default path is not an
// error, the zero Config applies.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path)

	return cfg, nil
}

// detectorOptions translates the config into detector options.
func (c Config) detectorOptions() []properties.Option {
	if c.PlanarityLimit > 0 {
		return []properties.Option{properties.WithPlanarityLimit(c.PlanarityLimit)}
	}

	return nil
}
