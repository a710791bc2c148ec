package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Unset variables leave
// the corresponding field zero, which parseEnv treats as "no override".
type envConfig struct {
	APIBaseURL     string        `env:"AUTHBOX_API_URL"`
	RequestTimeout time.Duration `env:"AUTHBOX_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"AUTHBOX_DB_PATH"`
}

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first; its absence is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
