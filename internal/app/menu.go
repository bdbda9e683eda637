package app

import (
	"context"
	"strings"

	"github.com/okian/marks/internal/adapters/console/collector"
	"github.com/okian/marks/internal/domain/stats"
	"github.com/okian/marks/pkg/logger"
)

// Operation names used in metrics and logs.
const (
	OpMean     = "mean"
	OpMedian   = "median"
	OpMode     = "mode"
	OpSkewness = "skewness"
	OpNewSet   = "new_set"
	OpAddMore  = "add_more"
	OpExit     = "exit"
)

// operation is one menu entry. run reports whether the session should end.
type operation struct {
	key   string
	name  string
	label string
	run   func(ctx context.Context) (bool, error)
}

func (s *Session) menu() []operation {
	return []operation{
		{key: "1", name: OpMean, label: "Calculate and display the average of the marks", run: s.showMean},
		{key: "2", name: OpMedian, label: "Calculate and display the middle value of the marks", run: s.showMedian},
		{key: "3", name: OpMode, label: "Calculate and display the most frequent mark(s)", run: s.showMode},
		{key: "4", name: OpSkewness, label: "Calculate and display the skewness of the marks", run: s.showSkewness},
		{key: "5", name: OpNewSet, label: "Enter a new set of marks", run: s.newSet},
		{key: "6", name: OpAddMore, label: "Add more marks to the current set", run: s.addMore},
		{key: "7", name: OpExit, label: "Exit the program", run: s.exit},
	}
}

func (s *Session) showMean(_ context.Context) (bool, error) {
	marks := s.marks.Values()
	if len(marks) == 0 {
		s.metrics.RecordUndefinedStatistic(OpMean)
	}
	s.con.Println("Average of the marks: " + formatFloat(stats.Mean(marks)))
	return false, nil
}

func (s *Session) showMedian(_ context.Context) (bool, error) {
	marks := s.marks.Values()
	if len(marks) == 0 {
		s.metrics.RecordUndefinedStatistic(OpMedian)
	}
	s.con.Println("Middle value of the marks: " + formatFloat(stats.Median(marks)))
	return false, nil
}

func (s *Session) showMode(_ context.Context) (bool, error) {
	modes := stats.Mode(s.marks.Values())
	if !modes.OK {
		s.metrics.RecordUndefinedStatistic(OpMode)
		s.con.Println("Most frequent mark(s): no data")
		return false, nil
	}
	s.con.Println("Most frequent mark(s): " + formatList(modes.Values))
	return false, nil
}

func (s *Session) showSkewness(_ context.Context) (bool, error) {
	skew := stats.Skewness(s.marks.Values())
	if !skew.OK {
		s.metrics.RecordUndefinedStatistic(OpSkewness)
		s.con.Println("Skewness of the marks: not computable")
		return false, nil
	}
	s.con.Println("Skewness of the marks: " + formatFloat(skew.Value))
	return false, nil
}

func (s *Session) newSet(ctx context.Context) (bool, error) {
	marks, err := s.collector.Collect(ctx, collector.Fresh)
	if err != nil {
		return false, err
	}
	s.setMarks(marks)
	s.logger.Info(ctx, "score set replaced", logger.String("session", s.id), logger.Int("marks", s.marks.Len()))
	return false, nil
}

func (s *Session) addMore(ctx context.Context) (bool, error) {
	marks, err := s.collector.Collect(ctx, collector.Continuation)
	if err != nil {
		return false, err
	}
	s.extendMarks(marks)
	s.logger.Info(ctx, "score set extended",
		logger.String("session", s.id),
		logger.Int("added", len(marks)),
		logger.Int("marks", s.marks.Len()),
	)
	return false, nil
}

func (s *Session) exit(_ context.Context) (bool, error) {
	s.con.Println("Exiting program. Thank you for using the calculator.")
	return true, nil
}

// formatList renders values as "70, 80, 90".
func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}
