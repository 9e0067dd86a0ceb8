package person

import (
	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageGender is the constraint message reported for an invalid Gender.
const MessageGender = "Gender should be either M or F"

// Accepted gender tokens.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// validGenders is the single source of truth for accepted gender tokens.
var validGenders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
}

// Gender is one of the accepted gender tokens.
type Gender struct {
	value string
}

var genderKind = field.NewKind("gender", MessageGender, IsValidGender, func(s string) Gender {
	return Gender{value: s}
})

// GenderKind returns the field kind guarding Gender.
func GenderKind() field.Kind[Gender] {
	return genderKind
}

// IsValidGender reports whether s is exactly one of the accepted tokens.
// Matching is case sensitive.
func IsValidGender(s string) bool {
	return validGenders[s]
}

func (g Gender) String() string { return g.value }
func (g Gender) IsZero() bool   { return g.value == "" }

func (g Gender) Equals(other Gender) bool {
	return g.value == other.value
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.value), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	v, err := genderKind.Parse(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
