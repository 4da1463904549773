package config

import (
	"fmt"
	"os"
)

// DefaultPath is the config file looked up when no --config is given.
const DefaultPath = ".examkit.yml"

// Load reads, parses, normalizes, and validates a config file. A missing
// file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the normalized zero config.
func Default() Config {
	var cfg Config
	Normalize(&cfg)
	return cfg
}
