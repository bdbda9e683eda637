package collector

import "errors"

// Sentinel error kinds for the collector.
var (
	ErrInvalidMode = errors.New("invalid collection mode")
)
