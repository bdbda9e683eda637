// Package model contains domain models passed between layers.
package model

import "slices"

// ScoreSet is the working collection of marks held by a session.
// Order follows entry order; duplicates are kept.
type ScoreSet struct {
	marks []float64
}

// NewScoreSet returns a score set holding a copy of marks.
func NewScoreSet(marks []float64) *ScoreSet {
	return &ScoreSet{marks: slices.Clone(marks)}
}

// Replace discards the current marks and holds a copy of marks instead.
func (s *ScoreSet) Replace(marks []float64) {
	s.marks = slices.Clone(marks)
}

// Extend appends marks after the existing ones.
func (s *ScoreSet) Extend(marks []float64) {
	s.marks = append(s.marks, marks...)
}

// Len returns the number of marks.
func (s *ScoreSet) Len() int {
	return len(s.marks)
}

// Values returns a copy of the marks in entry order.
func (s *ScoreSet) Values() []float64 {
	return slices.Clone(s.marks)
}
