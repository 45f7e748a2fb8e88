package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the YAML game setup: search parameters, pre-game blocks,
// and the kind of each player ("ai" or "manual").
type Config struct {
	Depth  int      `yaml:"depth"`
	Seed   uint64   `yaml:"seed"`
	Blocks []string `yaml:"blocks"`
	Red    string   `yaml:"red"`
	Blue   string   `yaml:"blue"`
}

// Default is the setup used when no config file is given: two search
// players at depth 4 on an unblocked board.
func Default() Config {
	return Config{Depth: 4, Red: "ai", Blue: "ai"}
}

// Load reads and parses the YAML setup at path. Missing fields keep
// their defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Depth <= 0 {
		cfg.Depth = Default().Depth
	}
	return cfg, nil
}
