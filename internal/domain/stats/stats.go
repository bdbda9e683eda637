// Package stats computes descriptive statistics over a set of marks.
//
// Every function is pure: the input slice is never reordered or modified,
// and repeated calls on the same input return the same result.
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// minSkewSamples is the smallest sample size for which skewness is defined.
const minSkewSamples = 3

// Skewness moment exponent.
const skewDenominatorPower = 1.5

// Modes is the result of Mode. OK is false when there is no data.
type Modes struct {
	Values []float64
	OK     bool
}

// Skew is the result of Skewness. OK is false when skewness is undefined.
type Skew struct {
	Value float64
	OK    bool
}

// Summary bundles every statistic for one score set.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     Modes
	Skewness Skew
}

// Mean returns the arithmetic average of marks, or 0 when marks is empty.
func Mean(marks []float64) float64 {
	if len(marks) == 0 {
		return 0
	}
	m, err := mstats.Mean(marks)
	if err != nil {
		return 0
	}
	return m
}

// Median returns the middle value of the sorted marks. For an even number
// of marks it is the mean of the two middle values. Empty input yields 0.
func Median(marks []float64) float64 {
	if len(marks) == 0 {
		return 0
	}
	// mstats.Median sorts a copy; marks keeps its order.
	m, err := mstats.Median(marks)
	if err != nil {
		return 0
	}
	return m
}

// Mode returns every value that occurs with the highest frequency, in
// ascending order.
func Mode(marks []float64) Modes {
	if len(marks) == 0 {
		return Modes{}
	}

	frequency := make(map[float64]int, len(marks))
	best := 0
	for _, v := range marks {
		frequency[v]++
		if frequency[v] > best {
			best = frequency[v]
		}
	}

	values := make([]float64, 0, len(frequency))
	for v, count := range frequency {
		if count == best {
			values = append(values, v)
		}
	}
	sort.Float64s(values)

	return Modes{Values: values, OK: true}
}

// Skewness returns the Fisher-Pearson coefficient m3 / m2^1.5 computed from
// the biased (population) central moments. It is undefined for fewer than
// three marks and for constant data.
func Skewness(marks []float64) Skew {
	if len(marks) < minSkewSamples {
		return Skew{}
	}

	n := float64(len(marks))
	mean := Mean(marks)

	var m2, m3 float64
	for _, x := range marks {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n

	if m2 == 0 {
		return Skew{}
	}

	return Skew{Value: m3 / math.Pow(m2, skewDenominatorPower), OK: true}
}

// Summarize computes all statistics for marks in one pass of calls.
func Summarize(marks []float64) Summary {
	return Summary{
		Count:    len(marks),
		Mean:     Mean(marks),
		Median:   Median(marks),
		Mode:     Mode(marks),
		Skewness: Skewness(marks),
	}
}
