// Package index provides Index, a position in a list that can be read as
// either one-based (as shown to users) or zero-based (as used internally).
package index

import (
	"fmt"
	"strconv"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageInvalidIndex is the constraint message reported for an invalid
// one-based index.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// Index is a list position. The zero value is the first position.
type Index struct {
	zeroBased int
}

// FromZeroBased creates an Index from a zero-based offset.
// It panics if offset is negative.
func FromZeroBased(offset int) Index {
	if offset < 0 {
		panic(fmt.Sprintf("index: zero-based offset %d is negative", offset))
	}
	return Index{zeroBased: offset}
}

// FromOneBased creates an Index from a one-based position.
// It panics if position is less than 1.
func FromOneBased(position int) Index {
	if position < 1 {
		panic(fmt.Sprintf("index: one-based position %d is less than 1", position))
	}
	return Index{zeroBased: position - 1}
}

// ZeroBased returns the zero-based offset.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the one-based position.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}

// Parse trims raw and converts the one-based position it holds into an
// Index.
func Parse(raw string) (Index, error) {
	trimmed := field.Normalize(raw)
	if !IsNonZeroUnsignedInteger(trimmed) {
		return Index{}, &field.FormatError{Field: "index", Message: MessageInvalidIndex}
	}
	// Cannot fail, the digits were range checked above
	n, _ := strconv.Atoi(trimmed)
	return FromOneBased(n), nil
}

func (i Index) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses a one-based position.
func (i *Index) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// IsNonZeroUnsignedInteger reports whether s is a run of ASCII digits
// denoting an integer in [1, math.MaxInt]. Leading zeros are accepted,
// signs are not.
func IsNonZeroUnsignedInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only out of range is possible past the digit check
		return false
	}
	return n > 0
}
