package app

import (
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager the session records to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTerminator sets the keyword that ends data entry.
func WithTerminator(keyword string) Option {
	return func(s *Session) {
		if keyword != "" {
			s.terminator = keyword
		}
	}
}

// WithPrompt replaces the per-entry prompt used while collecting marks.
func WithPrompt(text string) Option {
	return func(s *Session) {
		s.prompt = text
	}
}

// WithMinFreshMarks sets how many marks a new score set needs.
func WithMinFreshMarks(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.minFresh = n
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}
