package collector

import (
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Option applies a configuration option to the Collector.
type Option func(*Collector)

// WithTerminator sets the keyword that ends data entry.
func WithTerminator(keyword string) Option {
	return func(c *Collector) {
		if keyword != "" {
			c.terminator = keyword
		}
	}
}

// WithPrompt replaces the per-entry prompt. By default it names the
// terminator.
func WithPrompt(text string) Option {
	return func(c *Collector) {
		if text != "" {
			c.prompt = text
		}
	}
}

// WithMinFresh sets how many marks a fresh collection needs before the
// terminator is accepted.
func WithMinFresh(n int) Option {
	return func(c *Collector) {
		if n >= 0 {
			c.minFresh = n
		}
	}
}

// WithLogger sets a custom logger for the collector.
func WithLogger(l logger.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics manager the collector records to.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Collector) {
		if m != nil {
			c.metrics = m
		}
	}
}
