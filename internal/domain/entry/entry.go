// Package entry parses one line of mark input.
package entry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator splits several marks given on one line.
const Separator = ","

// Parse converts a comma-separated line into marks, in token order.
// A single invalid token rejects the whole line: no marks are returned.
func Parse(line string) ([]float64, error) {
	tokens := strings.Split(line, Separator)
	marks := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
		}
		// ParseFloat accepts "NaN" and "Inf"; marks must be finite.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is not finite", ErrInvalidToken, tok)
		}
		marks = append(marks, v)
	}
	return marks, nil
}

// IsTerminator reports whether line is the terminator keyword, ignoring
// case and surrounding whitespace.
func IsTerminator(line, keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(line), strings.TrimSpace(keyword))
}
