// Package config defines calculator configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Errors are wrapped with this package's sentinel kinds.
package config

// Default values.
const (
	DefaultLogLevel         = "warn"
	DefaultTerminator       = "done"
	DefaultMinFreshMarks    = 2
	DefaultMetricsNamespace = "marks"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log records to JSON.
	LogJSON bool `koanf:"log_json"`

	// Terminator is the keyword that ends a data-entry sequence.
	Terminator string `koanf:"terminator"`

	// Prompt replaces the per-entry prompt. Empty keeps the default,
	// which names the terminator.
	Prompt string `koanf:"prompt"`

	// MinFreshMarks is the number of marks a new set needs before the
	// terminator is accepted.
	MinFreshMarks int `koanf:"min_fresh_marks"`

	// MetricsAddr is the listen address for /metrics, e.g. ":9090".
	// Empty disables the endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`

	// MetricsEnabled turns recording on. When false every metric stays at zero.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         DefaultLogLevel,
		Terminator:       DefaultTerminator,
		MinFreshMarks:    DefaultMinFreshMarks,
		MetricsNamespace: DefaultMetricsNamespace,
		MetricsEnabled:   true,
	}
}
