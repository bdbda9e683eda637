// Package app runs the interactive marks calculator session.
package app

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/marks/internal/adapters/console"
	"github.com/okian/marks/internal/adapters/console/collector"
	"github.com/okian/marks/internal/domain/model"
	"github.com/okian/marks/internal/domain/stats"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Default session configuration.
const (
	defaultTerminator = "done"
	defaultMinFresh   = 2
)

// Session owns the current score set and dispatches menu choices to
// statistics and collection. A Session is single-threaded.
type Session struct {
	id         string
	con        *console.Console
	collector  *collector.Collector
	marks      *model.ScoreSet
	operations []operation

	terminator string
	prompt     string
	minFresh   int

	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs a Session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		con:        console.New(in, out),
		marks:      model.NewScoreSet(nil),
		terminator: defaultTerminator,
		minFresh:   defaultMinFresh,
		logger:     logger.New(io.Discard),
		metrics:    metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.collector = collector.New(s.con,
		collector.WithTerminator(s.terminator),
		collector.WithPrompt(s.prompt),
		collector.WithMinFresh(s.minFresh),
		collector.WithLogger(s.logger),
		collector.WithMetrics(s.metrics),
	)
	s.operations = s.menu()

	return s
}

// ID returns the session id used in log records.
func (s *Session) ID() string {
	return s.id
}

// Marks returns a copy of the current score set.
func (s *Session) Marks() []float64 {
	return s.marks.Values()
}

// Run collects an initial score set and then serves menu choices until the
// user exits. Invalid input never ends the session. Run returns nil on exit
// and when the input stream ends; other errors come from ctx.
func (s *Session) Run(ctx context.Context) error {
	s.metrics.RecordSessionStarted()
	s.logger.Info(ctx, "session started", logger.String("session", s.id))

	marks, err := s.collector.Collect(ctx, collector.Fresh)
	if err != nil {
		return s.finish(ctx, err)
	}
	s.setMarks(marks)

	for {
		s.con.Printf("\nYou have entered %d marks.\n", s.marks.Len())
		s.showMenu()

		choice, err := s.con.Prompt(ctx, "Enter your choice (1-"+strconv.Itoa(len(s.operations))+"): ")
		if err != nil {
			return s.finish(ctx, err)
		}

		op, ok := s.lookup(choice)
		if !ok {
			s.metrics.RecordInvalidChoice()
			s.logger.Debug(ctx, "invalid choice", logger.String("session", s.id), logger.String("choice", choice))
			s.con.Printf("Invalid choice. Please enter a number between 1 and %d.\n", len(s.operations))
			continue
		}

		s.metrics.RecordMenuChoice(op.name)
		s.logger.Debug(ctx, "dispatching", logger.String("session", s.id), logger.String("operation", op.name))

		exit, err := op.run(ctx)
		if err != nil {
			return s.finish(ctx, err)
		}
		if exit {
			s.logger.Info(ctx, "session ended", s.summaryFields()...)
			return nil
		}
	}
}

// finish maps the end of input to a clean exit.
func (s *Session) finish(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.con.Println("")
		s.logger.Info(ctx, "input closed; session ended", s.summaryFields()...)
		return nil
	}
	s.logger.Warn(ctx, "session aborted", logger.String("session", s.id), logger.Error(err))
	return err
}

func (s *Session) lookup(choice string) (operation, bool) {
	choice = strings.TrimSpace(choice)
	for _, op := range s.operations {
		if op.key == choice {
			return op, true
		}
	}
	return operation{}, false
}

func (s *Session) showMenu() {
	s.con.Println("\nChoose an option:")
	for _, op := range s.operations {
		s.con.Printf("%s. %s\n", op.key, op.label)
	}
}

func (s *Session) setMarks(marks []float64) {
	s.marks.Replace(marks)
	s.metrics.UpdateScoreSetSize(s.marks.Len())
}

func (s *Session) extendMarks(marks []float64) {
	s.marks.Extend(marks)
	s.metrics.UpdateScoreSetSize(s.marks.Len())
}

// summaryFields describes the final score set for the session ended record.
func (s *Session) summaryFields() []logger.Field {
	sum := stats.Summarize(s.marks.Values())
	fields := []logger.Field{
		logger.String("session", s.id),
		logger.Int("marks", sum.Count),
		logger.Float64("mean", sum.Mean),
		logger.Float64("median", sum.Median),
		logger.Int("modes", len(sum.Mode.Values)),
		logger.Bool("skewness_ok", sum.Skewness.OK),
	}
	if sum.Skewness.OK {
		fields = append(fields, logger.Float64("skewness", sum.Skewness.Value))
	}
	return fields
}
