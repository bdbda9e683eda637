package app

import (
	"math"
	"strconv"
)

// Magnitudes outside this range are printed in exponent form.
const (
	minPlainMagnitude = 1e-4
	maxPlainMagnitude = 1e21
)

// formatFloat renders v in the shortest form that round-trips, without an
// exponent for ordinary magnitudes.
func formatFloat(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	abs := math.Abs(v)
	if v == 0 || (abs >= minPlainMagnitude && abs < maxPlainMagnitude) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
