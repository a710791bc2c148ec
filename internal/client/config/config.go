// Package config assembles runtime settings for the authbox CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the authbox CLI.
//
// Fields:
//   - APIBaseURL: base URL of the authentication service, no trailing slash.
//   - RequestTimeout: per-request deadline for authentication calls.
//   - DatabasePath: location of the local session database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "authbox.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
