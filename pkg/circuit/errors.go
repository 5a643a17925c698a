package circuit

import "errors"

var (
	// ErrInvalidParameter reports a non-positive or non-finite numeric input.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidCircuitType reports an unrecognized topology tag.
	ErrInvalidCircuitType = errors.New("invalid circuit type")
)
