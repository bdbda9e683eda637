// Package metrics provides Prometheus metrics for the marks calculator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names.
const (
	labelOperation = "operation"
	labelStatistic = "statistic"
)

// Naming defaults.
const (
	DefaultNamespace = "marks"
	subsystem        = "session"
)

// entryBuckets covers a handful of marks per entry.
var entryBuckets = []float64{1, 2, 3, 5, 8, 13, 21} //nolint:gochecknoglobals // immutable defaults

// Manager manages all Prometheus metrics for the calculator.
type Manager struct {
	namespace string
	enabled   bool
	registry  prometheus.Registerer

	// Collection
	entriesAccepted       prometheus.Counter
	entriesRejected       prometheus.Counter
	marksAccepted         prometheus.Counter
	marksPerEntry         prometheus.Histogram
	prematureTerminations prometheus.Counter

	// Menu
	menuChoices         *prometheus.CounterVec
	invalidChoices      prometheus.Counter
	undefinedStatistics *prometheus.CounterVec

	// Session
	sessions     prometheus.Counter
	scoreSetSize prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: DefaultNamespace,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.entriesAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "entries_accepted_total",
		Help:      "Entries whose every token parsed as a mark",
	})

	m.entriesRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "entries_rejected_total",
		Help:      "Entries discarded because a token failed to parse",
	})

	m.marksAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "marks_accepted_total",
		Help:      "Marks added to a score set",
	})

	m.marksPerEntry = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "marks_per_entry",
		Help:      "Number of marks in each accepted entry",
		Buckets:   entryBuckets,
	})

	m.prematureTerminations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "premature_terminations_total",
		Help:      "Terminator entries rejected before the minimum mark count",
	})

	m.menuChoices = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "menu_choices_total",
		Help:      "Menu operations chosen, by operation",
	}, []string{labelOperation})

	m.invalidChoices = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "invalid_choices_total",
		Help:      "Unrecognized menu choices",
	})

	m.undefinedStatistics = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "undefined_statistics_total",
		Help:      "Statistics requested for data they are undefined on",
	}, []string{labelStatistic})

	m.sessions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "sessions_total",
		Help:      "Interactive sessions started",
	})

	m.scoreSetSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: subsystem,
		Name:      "score_set_size",
		Help:      "Marks currently held by the session",
	})
}

// RecordEntryAccepted counts an accepted entry holding n marks.
func (m *Manager) RecordEntryAccepted(n int) {
	if !m.enabled {
		return
	}
	m.entriesAccepted.Inc()
	m.marksAccepted.Add(float64(n))
	m.marksPerEntry.Observe(float64(n))
}

// RecordEntryRejected counts a discarded entry.
func (m *Manager) RecordEntryRejected() {
	if !m.enabled {
		return
	}
	m.entriesRejected.Inc()
}

// RecordPrematureTermination counts a terminator given too early.
func (m *Manager) RecordPrematureTermination() {
	if !m.enabled {
		return
	}
	m.prematureTerminations.Inc()
}

// RecordMenuChoice counts a dispatched menu operation.
func (m *Manager) RecordMenuChoice(operation string) {
	if !m.enabled {
		return
	}
	m.menuChoices.WithLabelValues(operation).Inc()
}

// RecordInvalidChoice counts an unrecognized menu choice.
func (m *Manager) RecordInvalidChoice() {
	if !m.enabled {
		return
	}
	m.invalidChoices.Inc()
}

// RecordUndefinedStatistic counts a statistic that had no result.
func (m *Manager) RecordUndefinedStatistic(statistic string) {
	if !m.enabled {
		return
	}
	m.undefinedStatistics.WithLabelValues(statistic).Inc()
}

// RecordSessionStarted counts a new session.
func (m *Manager) RecordSessionStarted() {
	if !m.enabled {
		return
	}
	m.sessions.Inc()
}

// UpdateScoreSetSize sets the current score set size.
func (m *Manager) UpdateScoreSetSize(size int) {
	if !m.enabled {
		return
	}
	m.scoreSetSize.Set(float64(size))
}

// Default returns the global manager. It records to a private registry and
// serves callers that were not given a manager of their own.
func Default() *Manager {
	return globalManager
}
