package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Env holds the settings read from the environment.
type Env struct {
	Home      string `env:"UMRAHPLAN_HOME"`
	LogLevel  string `env:"UMRAHPLAN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"UMRAHPLAN_LOG_FORMAT" envDefault:"text"`
	PublicURL string `env:"UMRAHPLAN_PUBLIC_URL"`
}

// LoadEnv loads the given dotenv files, skipping missing ones, then parses
// the environment. Variables already set win over dotenv values.
func LoadEnv(dotenvFiles ...string) (Env, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("reading environment: %w", err)
	}
	return e, nil
}

// DataDir returns the directory holding config, catalogs and saved plans:
// UMRAHPLAN_HOME when set, ~/.umrahplan otherwise.
func (e Env) DataDir(homeDir string) string {
	if e.Home != "" {
		return e.Home
	}
	return filepath.Join(homeDir, ".umrahplan")
}

// Apply copies environment overrides onto cfg.
func (e Env) Apply(cfg *Config) {
	if e.PublicURL != "" {
		cfg.PublicURL = e.PublicURL
	}
}
