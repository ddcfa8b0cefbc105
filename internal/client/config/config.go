// Package config loads runtime settings for the storefront CLI.
//
// Sources, later ones overriding earlier ones:
//  1. built-in defaults,
//  2. YAML file (path from -c/-config) or environment variables,
//  3. command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dmitrijs2005/coursestore/internal/flagx"
)

// Config holds runtime settings for the storefront CLI.
type Config struct {
	// APIBaseURL is the root of the course store HTTP API.
	APIBaseURL string `yaml:"api_base_url" env:"COURSESTORE_API_URL"`
	// DatabasePath is the local sqlite file holding persisted client state.
	DatabasePath string `yaml:"database_path" env:"COURSESTORE_DB"`
	// RequestTimeout bounds every API round-trip.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"COURSESTORE_TIMEOUT"`
	// RequestRate / RequestBurst configure the outbound request throttle.
	RequestRate  float64 `yaml:"request_rate" env:"COURSESTORE_RATE"`
	RequestBurst int     `yaml:"request_burst" env:"COURSESTORE_BURST"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug" env:"COURSESTORE_DEBUG"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.DatabasePath = "coursestore.db"
	c.RequestTimeout = 10 * time.Second
	c.RequestRate = 10
	c.RequestBurst = 20
	c.Debug = false
}

// LoadConfig builds a Config from defaults, then the YAML file or the
// environment, then command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigPathFlags(); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	parseFlags(cfg, os.Args[1:])
	return cfg, nil
}
