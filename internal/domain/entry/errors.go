package entry

import "errors"

// Sentinel error kinds for entry parsing.
var (
	ErrInvalidToken = errors.New("invalid mark")
)
