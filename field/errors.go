package field

import (
	"errors"
)

var (
	// ErrInvalidFormat is matched by every FormatError via errors.Is.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNilInput is returned when a required raw string is absent. It is a
	// caller contract violation, not a user facing validation failure.
	ErrNilInput = errors.New("raw input is nil")
)

// FormatError is returned when a raw token does not satisfy the format rule
// of its field kind.
//
// Message is the fixed constraint message of the kind and is returned
// verbatim by Error(). The offending input is never part of the error.
type FormatError struct {
	Field   string // Name of the field kind, e.g. "phone"
	Message string // Fixed, user facing constraint message
}

// Error implements the error interface
func (fe *FormatError) Error() string {
	return fe.Message
}

// Is reports whether target is ErrInvalidFormat.
func (fe *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Message returns the constraint message carried by err, unwrapping as
// needed. ok is false when err does not wrap a FormatError.
func Message(err error) (msg string, ok bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Message, true
	}
	return "", false
}
