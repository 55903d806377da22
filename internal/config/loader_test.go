package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/mergington/activities/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CatalogPath, convey.ShouldEqual, "")
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			// Set environment variables
			_ = os.Setenv("ACTIVITIES_ADDR", ":9090")
			_ = os.Setenv("ACTIVITIES_LOG_LEVEL", "debug")
			_ = os.Setenv("ACTIVITIES_CATALOG_PATH", "/etc/mergington/catalog.yaml")
			_ = os.Setenv("ACTIVITIES_METRICS_INTERVAL_SECONDS", "10")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.CatalogPath, convey.ShouldEqual, "/etc/mergington/catalog.yaml")
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			// Create a temporary YAML config file
			yamlContent := `
addr: ":7070"
log_level: "warn"
catalog_path: "catalog/fall.yaml"
metrics_interval_seconds: 30
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			// Set the config file path
			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.CatalogPath, convey.ShouldEqual, "catalog/fall.yaml")
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			// Create a YAML config file
			yamlContent := `
addr: ":7070"
log_level: "warn"
metrics_interval_seconds: 30
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			// Set both file and environment variables
			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			_ = os.Setenv("ACTIVITIES_ADDR", ":9090")      // This should override the file
			_ = os.Setenv("ACTIVITIES_LOG_LEVEL", "error") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")              // Overridden by env
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")          // Overridden by env
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 30) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			// Create an invalid YAML file
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("ACTIVITIES_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("ACTIVITIES_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			// Create a YAML file with only some fields
			yamlContent := `
addr: ":7070"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")             // From file
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")          // From defaults
				convey.So(cfg.CatalogPath, convey.ShouldEqual, "")           // From defaults
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 5) // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("ACTIVITIES_METRICS_INTERVAL_SECONDS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with zero metrics interval", func() {
			_ = os.Setenv("ACTIVITIES_METRICS_INTERVAL_SECONDS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should accept the zero value", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with negative metrics interval", func() {
			_ = os.Setenv("ACTIVITIES_METRICS_INTERVAL_SECONDS", "-5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should pass the value through", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, -5)
			})
		})

		convey.Convey("When loading config with special characters in addr", func() {
			_ = os.Setenv("ACTIVITIES_ADDR", "localhost:8080")
			_ = os.Setenv("ACTIVITIES_ADDR", "0.0.0.0:9090")
			_ = os.Setenv("ACTIVITIES_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080") // Last one wins
			})
		})

		convey.Convey("When loading config with YAML file containing comments", func() {
			yamlContent := `
# This is a comment
addr: ":7070"  # Inline comment
log_level: "debug"
# Another comment
metrics_interval_seconds: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MetricsIntervalSeconds, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with YAML file containing empty addr", func() {
			yamlContent := `
addr: ""
log_level: "debug"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ACTIVITIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return validation error for empty addr", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"ACTIVITIES_CONFIG",
		"ACTIVITIES_ADDR",
		"ACTIVITIES_LOG_LEVEL",
		"ACTIVITIES_CATALOG_PATH",
		"ACTIVITIES_METRICS_INTERVAL_SECONDS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "activities-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
