package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven configuration for harborctl.
type Config struct {
	// BaseURL is the root URL of the Harbor chat service
	BaseURL string `env:"HARBOR_URL" envDefault:"http://localhost:3000"`

	// TokenStore selects where the session token is persisted:
	// "memory", "file" or "sqlite"
	TokenStore string `env:"HARBOR_TOKEN_STORE" envDefault:"file"`

	// TokenFile is the path of the encrypted token file (file store)
	TokenFile string `env:"HARBOR_TOKEN_FILE" envDefault:".harbor-token"`

	// TokenPassphrase encrypts the token file at rest (file store)
	TokenPassphrase string `env:"HARBOR_TOKEN_PASSPHRASE" envDefault:"harborctl"`

	// DatabaseFile is the path of the SQLite database (sqlite store)
	DatabaseFile string `env:"HARBOR_DATABASE_FILE" envDefault:"harbor.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
