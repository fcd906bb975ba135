package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"dasa.cc/glamp/widget"
)

// Config is the host simulator's configuration file.
type Config struct {
	// Rate is how many times per second run ticks the UI.
	Rate int `toml:"rate"`

	// Resize enables the resize capability offered to the UI.
	Resize bool `toml:"resize"`

	UI widget.Config `toml:"ui"`
}

func DefaultConfig() Config {
	return Config{
		Rate:   60,
		Resize: true,
		UI:     widget.DefaultConfig(),
	}
}

// LoadConfig reads a TOML file over the defaults. An empty name yields the
// defaults.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
