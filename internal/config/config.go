// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML activity catalog. Empty means the
	// built-in Mergington catalog.
	CatalogPath string `koanf:"catalog_path"`

	// MetricsIntervalSeconds sets how often roster gauges are refreshed.
	MetricsIntervalSeconds int `koanf:"metrics_interval_seconds"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:               "info",
		Addr:                   ":8080",
		CatalogPath:            "",
		MetricsIntervalSeconds: 5,
	}
	return c
}
