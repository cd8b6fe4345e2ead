package dcb

import "errors"

var (
	// ErrOutOfRange indicates a position or index outside the live content.
	ErrOutOfRange = errors.New("dcb: position out of range")

	// ErrInvalidArgument indicates a required source was missing or unusable.
	ErrInvalidArgument = errors.New("dcb: invalid argument")
)
