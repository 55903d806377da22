package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ACTIVITIES_CONFIG is set
//  3. env (prefix ACTIVITIES_)
func Load(_ context.Context) (*Config, error) {
	// Optional .env file for local development. A missing file is fine.
	_ = godotenv.Load()

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ACTIVITIES_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: ACTIVITIES_ADDR, ACTIVITIES_LOG_LEVEL, ...
	// Map env keys like ACTIVITIES_LOG_LEVEL -> log_level (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ACTIVITIES_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "activities_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
