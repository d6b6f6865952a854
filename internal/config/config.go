// Package config loads runtime settings from defaults, an optional TOML
// file, a .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Backend modes
const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port        string        `toml:"port"`
	Environment string        `toml:"environment"`
	Timezone    string        `toml:"timezone"`
	Backend     BackendConfig `toml:"backend"`
	Session     SessionConfig `toml:"session"`
	Log         LogConfig     `toml:"log"`
	Admin       AdminConfig   `toml:"admin"`
}

type BackendConfig struct {
	Mode        string        `toml:"mode"`
	URL         string        `toml:"url"`
	AnonKey     string        `toml:"anon_key"`
	DatabaseURL string        `toml:"database_url"`
	Timeout     Duration `toml:"timeout"`
}

type SessionConfig struct {
	Secret string   `toml:"secret"`
	MaxAge Duration `toml:"max_age"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type AdminConfig struct {
	// SuccessRedirectDelay is how long the "listing created" page waits before returning to the list
	SuccessRedirectDelay Duration `toml:"success_redirect_delay"`
}

// Duration reads TOML strings such as "1500ms" or "168h"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: %w - duration %q: %v", ErrInvalidConfig, text, err)
	}
	if v < 0 {
		return fmt.Errorf("config: %w - negative duration %q", ErrInvalidConfig, text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the settings used when nothing else is configured
func Default() Config {
	return Config{
		Port:        "8080",
		Environment: EnvDevelopment,
		Timezone:    "Europe/London",
		Backend: BackendConfig{
			Mode:    ModeMemory,
			Timeout: Duration{10 * time.Second},
		},
		Session: SessionConfig{
			MaxAge: Duration{7 * 24 * time.Hour},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Admin: AdminConfig{
			SuccessRedirectDelay: Duration{1500 * time.Millisecond},
		},
	}
}

// Load builds the config. path may be empty; a missing .env is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	set(&cfg.Port, "PORT")
	set(&cfg.Environment, "APP_ENV")
	set(&cfg.Timezone, "APP_TIMEZONE")
	set(&cfg.Backend.Mode, "BACKEND_MODE")
	set(&cfg.Backend.URL, "BACKEND_URL")
	set(&cfg.Backend.AnonKey, "BACKEND_ANON_KEY")
	set(&cfg.Backend.DatabaseURL, "DATABASE_URL")
	set(&cfg.Session.Secret, "SESSION_SECRET")
	set(&cfg.Log.Level, "LOG_LEVEL")
	set(&cfg.Log.Format, "LOG_FORMAT")

	if v := getenv("ADMIN_REDIRECT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.Admin.SuccessRedirectDelay = Duration{time.Duration(ms) * time.Millisecond}
		}
	}
}

// Validate checks that the selected backend mode has what it needs
func (c Config) Validate() error {
	switch c.Backend.Mode {
	case ModeMemory:
	case ModePostgres:
		if c.Backend.DatabaseURL == "" {
			return fmt.Errorf("config: %w - DATABASE_URL is required in postgres mode", ErrInvalidConfig)
		}
		if c.Backend.URL == "" {
			return fmt.Errorf("config: %w - BACKEND_URL is required in postgres mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("config: %w - unknown backend mode %q", ErrInvalidConfig, c.Backend.Mode)
	}

	if c.Session.Secret == "" && !c.IsDevelopment() {
		return fmt.Errorf("config: %w - SESSION_SECRET is required outside development", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: %w - timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Location resolves the timezone used for "tonight"/"tomorrow"
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
