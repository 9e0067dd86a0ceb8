package person

import (
	"regexp"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageName is the constraint message reported for an invalid Name.
const MessageName = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be a space, otherwise " " would be valid.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Name is a person's name.
// Invariant: the wrapped string satisfies IsValidName.
type Name struct {
	value string
}

var nameKind = field.NewKind("name", MessageName, IsValidName, func(s string) Name {
	return Name{value: s}
})

// NameKind returns the field kind guarding Name.
func NameKind() field.Kind[Name] {
	return nameKind
}

// IsValidName reports whether s is a valid name.
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

func (n Name) String() string { return n.value }
func (n Name) IsZero() bool   { return n.value == "" }

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText parses text through NameKind.
func (n *Name) UnmarshalText(text []byte) error {
	v, err := nameKind.Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
