// Package collector gathers marks from line-oriented input until the
// terminator keyword is entered.
package collector

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/marks/internal/adapters/console"
	"github.com/okian/marks/internal/domain/entry"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Default collector configuration.
const (
	defaultTerminator = "done"
	defaultMinFresh   = 2
)

// Mode selects how collection may terminate.
type Mode int

const (
	// Fresh starts a new score set and needs a minimum number of marks.
	Fresh Mode = iota
	// Continuation adds to an existing score set and may end at once.
	Continuation
)

func (m Mode) String() string {
	switch m {
	case Fresh:
		return "fresh"
	case Continuation:
		return "continuation"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Collector reads entries from a console and accumulates the marks in them.
type Collector struct {
	con        *console.Console
	terminator string
	prompt     string
	minFresh   int
	logger     logger.Logger
	metrics    *metrics.Manager
}

// New creates a collector reading from con.
func New(con *console.Console, opts ...Option) *Collector {
	c := &Collector{
		con:        con,
		terminator: defaultTerminator,
		minFresh:   defaultMinFresh,
		logger:     logger.New(io.Discard),
		metrics:    metrics.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect reads entries until the terminator is accepted and returns the
// marks in entry order. Malformed entries are rejected with a message and
// never surface as errors. The only errors are io.EOF when input ends, in
// which case the marks gathered so far are returned with it, and a
// cancelled ctx.
func (c *Collector) Collect(ctx context.Context, mode Mode) ([]float64, error) {
	if mode != Fresh && mode != Continuation {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	c.con.Printf("Enter marks one at a time or separated by commas. Type '%s' to finish.\n", c.terminator)
	prompt := c.prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Enter a mark(s) or '%s': ", c.terminator)
	}

	marks := make([]float64, 0)
	for {
		line, err := c.con.Prompt(ctx, prompt)
		if err != nil {
			c.logger.Debug(ctx, "collection interrupted",
				logger.String("mode", mode.String()),
				logger.Int("marks", len(marks)),
				logger.Error(err),
			)
			return marks, err
		}

		if entry.IsTerminator(line, c.terminator) {
			if mode == Fresh && len(marks) < c.minFresh {
				c.metrics.RecordPrematureTermination()
				c.logger.Debug(ctx, "terminator rejected",
					logger.Int("marks", len(marks)),
					logger.Int("required", c.minFresh),
				)
				c.con.Printf("Please enter at least %d marks before typing '%s'.\n", c.minFresh, c.terminator)
				continue
			}
			c.logger.Info(ctx, "collection finished",
				logger.String("mode", mode.String()),
				logger.Int("marks", len(marks)),
			)
			return marks, nil
		}

		values, err := entry.Parse(line)
		if err != nil {
			c.metrics.RecordEntryRejected()
			c.logger.Debug(ctx, "entry rejected", logger.String("entry", line), logger.Error(err))
			c.con.Println("Please enter valid numbers separated by commas. Non-numeric inputs are not accepted.")
			continue
		}

		marks = append(marks, values...)
		c.metrics.RecordEntryAccepted(len(values))
	}
}
