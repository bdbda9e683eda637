package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/marks/internal/domain/entry"
)

// Environment variable names.
const (
	EnvPrefix     = "MARKS_"
	EnvConfigFile = EnvPrefix + "CONFIG"
)

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	path      string
	overrides map[string]any
}

// WithFile loads the given YAML file. It takes precedence over MARKS_CONFIG.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		if path != "" {
			o.path = path
		}
	}
}

// WithOverride sets key to value after every other source, e.g. for
// explicitly passed command-line flags.
func WithOverride(key string, value any) LoadOption {
	return func(o *loadOptions) {
		o.overrides[key] = value
	}
}

// Load builds a Config by layering defaults, optional file, env vars and
// overrides. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from WithFile or MARKS_CONFIG
//  3. env (prefix MARKS_)
//  4. overrides
func Load(_ context.Context, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		path:      os.Getenv(EnvConfigFile),
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if o.path != "" {
		if err := k.Load(file.Provider(o.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, o.path, err)
		}
	}

	// MARKS_MIN_FRESH_MARKS -> min_fresh_marks (flat keys, underscores kept).
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	for key, value := range o.overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("%w: override %s: %w", ErrLoadConfig, key, err)
		}
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values the calculator cannot run with.
func (c *Config) Validate() error {
	c.Terminator = strings.TrimSpace(c.Terminator)
	if c.Terminator == "" {
		return fmt.Errorf("%w: terminator must not be empty", ErrInvalidConfig)
	}
	if strings.Contains(c.Terminator, ",") {
		return fmt.Errorf("%w: terminator must not contain a comma", ErrInvalidConfig)
	}
	if _, err := entry.Parse(c.Terminator); err == nil {
		return fmt.Errorf("%w: terminator %q would be read as marks", ErrInvalidConfig, c.Terminator)
	}
	if strings.TrimSpace(c.MetricsNamespace) == "" {
		return fmt.Errorf("%w: metrics_namespace must not be empty", ErrInvalidConfig)
	}
	if c.MinFreshMarks < 0 {
		return fmt.Errorf("%w: min_fresh_marks must not be negative", ErrInvalidConfig)
	}
	return nil
}
