package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/marks/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MARKS_LOG_LEVEL", "debug")
			_ = os.Setenv("MARKS_TERMINATOR", "END")
			_ = os.Setenv("MARKS_MIN_FRESH_MARKS", "3")
			_ = os.Setenv("MARKS_METRICS_ADDR", ":9090")
			_ = os.Setenv("MARKS_LOG_JSON", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Terminator, convey.ShouldEqual, "END")
				convey.So(cfg.MinFreshMarks, convey.ShouldEqual, 3)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogJSON, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempConfigFile(`
log_level: info
terminator: finish
min_fresh_marks: 1
`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MARKS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Terminator, convey.ShouldEqual, "finish")
				convey.So(cfg.MinFreshMarks, convey.ShouldEqual, 1)
				convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty) // From defaults
			})
		})

		convey.Convey("When the file is passed explicitly", func() {
			envFile := createTempConfigFile("terminator: fromenv\n")
			flagFile := createTempConfigFile("terminator: fromflag\n")
			defer func() {
				_ = os.Remove(envFile)
				_ = os.Remove(flagFile)
			}()

			_ = os.Setenv("MARKS_CONFIG", envFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, config.WithFile(flagFile))

			convey.Convey("Then it should take precedence over MARKS_CONFIG", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Terminator, convey.ShouldEqual, "fromflag")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(`
log_level: info
terminator: finish
`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MARKS_CONFIG", tmpFile)
			_ = os.Setenv("MARKS_TERMINATOR", "stop") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Terminator, convey.ShouldEqual, "stop") // Overridden by env
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")   // From file
			})
		})

		convey.Convey("When overrides are given", func() {
			_ = os.Setenv("MARKS_LOG_LEVEL", "info")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx,
				config.WithOverride("log_level", "error"),
				config.WithOverride("metrics_addr", "127.0.0.1:9100"),
			)

			convey.Convey("Then they should win over env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, "127.0.0.1:9100")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MARKS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			cfg, err := config.Load(ctx, config.WithFile("/non/existent/file.yaml"))

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty terminator", func() {
			_ = os.Setenv("MARKS_TERMINATOR", "  ")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "terminator must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the terminator contains a comma", func() {
			_ = os.Setenv("MARKS_TERMINATOR", "a,b")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the terminator is a number", func() {
			_ = os.Setenv("MARKS_TERMINATOR", "1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When metrics settings come from the environment", func() {
			_ = os.Setenv("MARKS_METRICS_NAMESPACE", "grades")
			_ = os.Setenv("MARKS_METRICS_ENABLED", "false")
			_ = os.Setenv("MARKS_PROMPT", "> ")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "grades")
			convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
			convey.So(cfg.Prompt, convey.ShouldEqual, "> ")
		})

		convey.Convey("When the minimum is negative", func() {
			_ = os.Setenv("MARKS_MIN_FRESH_MARKS", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("MARKS_MIN_FRESH_MARKS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"MARKS_CONFIG",
		"MARKS_LOG_LEVEL",
		"MARKS_LOG_JSON",
		"MARKS_TERMINATOR",
		"MARKS_MIN_FRESH_MARKS",
		"MARKS_METRICS_ADDR",
		"MARKS_METRICS_NAMESPACE",
		"MARKS_METRICS_ENABLED",
		"MARKS_PROMPT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "marks-config-*.yaml")
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
