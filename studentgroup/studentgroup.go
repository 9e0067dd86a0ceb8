// Package studentgroup defines StudentGroup, the tag-like group a person
// belongs to, and Set, a collection of groups without duplicates.
package studentgroup

import (
	"regexp"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageConstraints is the constraint message reported for an invalid
// StudentGroup.
const MessageConstraints = "Student group names should be alphanumeric"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// StudentGroup is a group name, e.g. "cs2103".
// Two groups are equal iff their names are equal, so StudentGroup is
// usable as a map key.
type StudentGroup struct {
	name string
}

var kind = field.NewKind("student group", MessageConstraints, IsValidName, func(s string) StudentGroup {
	return StudentGroup{name: s}
})

// Kind returns the field kind guarding StudentGroup.
func Kind() field.Kind[StudentGroup] {
	return kind
}

// IsValidName reports whether s is a valid group name.
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

// Parse trims raw and converts it into a StudentGroup.
func Parse(raw string) (StudentGroup, error) {
	return kind.Parse(raw)
}

func (g StudentGroup) Name() string   { return g.name }
func (g StudentGroup) String() string { return "[" + g.name + "]" }
func (g StudentGroup) IsZero() bool   { return g.name == "" }

func (g StudentGroup) MarshalText() ([]byte, error) {
	return []byte(g.name), nil
}

func (g *StudentGroup) UnmarshalText(text []byte) error {
	v, err := kind.Parse(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
