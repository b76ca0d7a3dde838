package fluentrx

import (
	"errors"
	"fmt"
)

// ErrInvalidLiteral indicates that a literal argument (octal value, hex or
// unicode digits, control character) is outside the range its notation
// accepts.
var ErrInvalidLiteral = errors.New("invalid literal argument")

// LiteralError describes a rejected literal argument.
//
// It unwraps to ErrInvalidLiteral:
//
//	_, err := fluentrx.New().Hex("1G")
//	if errors.Is(err, fluentrx.ErrInvalidLiteral) {
//	    // substitute a corrected literal
//	}
type LiteralError struct {
	// Op is the builder operation that received the argument, e.g. "Hex".
	Op string

	// Value is the rejected argument as the caller passed it.
	Value string

	// Reason states the constraint the argument violated.
	Reason string
}

// Error implements the error interface
func (e *LiteralError) Error() string {
	return fmt.Sprintf("fluentrx: %s(%q): %s", e.Op, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidLiteral
func (e *LiteralError) Unwrap() error {
	return ErrInvalidLiteral
}

func literalErrorf(op, value, format string, args ...any) error {
	return &LiteralError{
		Op:     op,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}
