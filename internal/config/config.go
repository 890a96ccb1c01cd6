// Package config reads layerkit settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Environment variables read by Load.
const (
	EnvDir     = "LAYERKIT_DIR"
	EnvDB      = "LAYERKIT_DB"
	EnvLocale  = "LAYERKIT_LOCALE"
	EnvDensity = "LAYERKIT_DENSITY"
	EnvDebug   = "LAYERKIT_DEBUG"
)

// DefaultLocale is used when LAYERKIT_LOCALE is unset.
var DefaultLocale = language.AmericanEnglish

// Config is the resolved runtime configuration.
type Config struct {
	Dir     string // layout directory
	DB      string // settings database
	Locale  language.Tag
	Density float64
	Debug   string // debug log path, empty for none
}

// Load reads the .env files (default ".env"; a missing file is fine) and
// then the environment. Values already set in the environment win over
// the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves a Config using getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Dir:     getenv(EnvDir),
		DB:      getenv(EnvDB),
		Locale:  DefaultLocale,
		Density: 1,
		Debug:   getenv(EnvDebug),
	}

	if cfg.Dir == "" {
		base := getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return Config{}, fmt.Errorf("resolve layout directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
		cfg.Dir = filepath.Join(base, "layerkit", "layouts")
	}
	if cfg.DB == "" {
		cfg.DB = filepath.Join(filepath.Dir(cfg.Dir), "settings.db")
	}

	if v := getenv(EnvLocale); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLocale, err)
		}
		cfg.Locale = tag
	}

	if v := getenv(EnvDensity); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDensity, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s: density must be positive, got %v", EnvDensity, d)
		}
		cfg.Density = d
	}
	return cfg, nil
}
