package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a configuration cannot describe a
	// fractal at all (negative depth, degenerate triangle, empty region...).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrResourceExhausted is returned when a configuration is valid but would
	// exceed one of the ceilings in Limits.
	ErrResourceExhausted = errors.New("resource ceiling exceeded")
	// ErrUnknownKind is returned by Lookup and Generate for unregistered kinds.
	ErrUnknownKind = errors.New("unknown fractal kind")
)

// Invalidf wraps ErrInvalidParameter with a formatted detail message.
func Invalidf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, a...))
}

// Exhaustedf wraps ErrResourceExhausted with a formatted detail message.
func Exhaustedf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrResourceExhausted, fmt.Sprintf(format, a...))
}
