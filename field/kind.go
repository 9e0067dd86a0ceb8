// Package field holds the shared template every field validator follows:
// trim, check the format rule, then construct the value or fail with the
// kind's fixed constraint message.
package field

import (
	"strings"
)

// Kind binds a format rule, its constraint message and the constructor of
// the value object guarded by that rule.
//
// A value object package declares exactly one Kind per value type and keeps
// its constructor unexported, so Parse is the only way to obtain a non-zero
// value. The rule is then the single source of truth for both the parser
// and the value's invariant.
type Kind[T any] struct {
	name    string
	message string
	valid   func(string) bool
	wrap    func(string) T
}

// NewKind creates a Kind. valid must be a pure predicate over an already
// normalized string, wrap is only ever called with strings valid accepted.
func NewKind[T any](name, message string, valid func(string) bool, wrap func(string) T) Kind[T] {
	if valid == nil || wrap == nil {
		panic("field: NewKind requires a predicate and a constructor")
	}
	return Kind[T]{
		name:    name,
		message: message,
		valid:   valid,
		wrap:    wrap,
	}
}

// Name returns the field kind name used in FormatError.Field.
func (k Kind[T]) Name() string {
	return k.name
}

// Message returns the fixed constraint message of the kind.
func (k Kind[T]) Message() string {
	return k.message
}

// IsValid reports whether s, taken as is, satisfies the format rule.
func (k Kind[T]) IsValid(s string) bool {
	return k.valid(s)
}

// Parse trims raw and converts it into a value of the kind. The format rule
// is evaluated exactly once.
func (k Kind[T]) Parse(raw string) (T, error) {
	trimmed := Normalize(raw)
	if !k.valid(trimmed) {
		var zero T
		return zero, &FormatError{Field: k.name, Message: k.message}
	}
	return k.wrap(trimmed), nil
}

// ParsePtr is Parse for callers that model an omitted argument as nil.
// A nil raw returns ErrNilInput.
func (k Kind[T]) ParsePtr(raw *string) (T, error) {
	if raw == nil {
		var zero T
		return zero, ErrNilInput
	}
	return k.Parse(*raw)
}

// Normalize trims leading and trailing white space from raw.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}
