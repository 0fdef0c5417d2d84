package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds the evaluator's tunables, parsed from environment
// variables. Rule data itself comes from the persistence collaborator,
// never from here.
type AppConfig struct {
	// CacheSize bounds the number of memoized verdicts kept for polling
	// callers.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// HorizonDays is how far the next-allowed search looks before
	// declaring a block indefinite.
	HorizonDays int `koanf:"horizon_days" validate:"required,gte=1,lte=3660"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Timezone is the business calendar zone all rule arithmetic runs in.
	Timezone string `koanf:"timezone" validate:"required,timezone"`
}

// DEFAULT_APP_CONFIG defines the default settings for the no-send
// evaluator: a two-year search horizon and the Tokyo business calendar.
var DEFAULT_APP_CONFIG = AppConfig{
	CacheSize:   1000,
	Env:         "prod",
	HorizonDays: 730,
	LogLevel:    "info",
	Timezone:    "Asia/Tokyo",
}

// envLoader loads environment variables with the prefix "NOSEND_",
// lowercasing keys and stripping the prefix. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "NOSEND_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "NOSEND_")), strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into the provided Koanf
// instance using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Location resolves the configured business timezone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Horizon returns the configured search horizon as a duration.
func (c *AppConfig) Horizon() time.Duration {
	return time.Duration(c.HorizonDays) * 24 * time.Hour
}
