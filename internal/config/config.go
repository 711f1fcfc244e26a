// Package config loads the showcase configuration: the registry block
// switch, listener scripts to load, and per-listener priorities.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the showcase configuration file.
type Config struct {
	// Blocked sets the registry's global block switch at startup.
	Blocked bool `toml:"blocked"`

	// Scripts are Lua listener files loaded into the script engine.
	Scripts []string `toml:"scripts"`

	// Priorities maps listener names to their registration priority.
	Priorities map[string]int `toml:"priorities"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Priorities: map[string]int{},
	}
}

// Load reads a TOML configuration file. A missing file is not an error; it
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Priorities == nil {
		cfg.Priorities = map[string]int{}
	}
	return cfg, nil
}
