// Package person defines the validated value objects that make up a person
// record, and the Person aggregate that holds them.
//
// Every value type wraps a string that satisfies its format rule. The rule
// is exposed as an IsValidX predicate and bound, together with the constraint
// message and the unexported constructor, into a field.Kind returned by XKind.
// Parsing through the Kind is the only way to obtain a non-zero value.
package person

import (
	"github.com/SimonDaKappa/pave-fields/studentgroup"
)

// Person is a person record. The aggregate owns every value it holds.
type Person struct {
	Name                Name                `json:"name" yaml:"name"`
	Phone               Phone               `json:"phone" yaml:"phone"`
	Email               Email               `json:"email" yaml:"email"`
	Address             Address             `json:"address" yaml:"address"`
	MatriculationNumber MatriculationNumber `json:"matriculation_number" yaml:"matriculation_number"`
	Gender              Gender              `json:"gender" yaml:"gender"`
	Block               Block               `json:"block" yaml:"block"`
	Room                Room                `json:"room" yaml:"room"`
	Groups              studentgroup.Set    `json:"groups" yaml:"groups"`
}

// IsSamePerson reports whether p and other identify the same person. Two
// records with the same matriculation number are the same person regardless
// of the other fields.
func (p Person) IsSamePerson(other Person) bool {
	if p.MatriculationNumber.IsZero() || other.MatriculationNumber.IsZero() {
		return p.Name.Equals(other.Name)
	}
	return p.MatriculationNumber.Equals(other.MatriculationNumber)
}

// Equals reports whether every field of p equals the one of other.
func (p Person) Equals(other Person) bool {
	return p.Name.Equals(other.Name) &&
		p.Phone.Equals(other.Phone) &&
		p.Email.Equals(other.Email) &&
		p.Address.Equals(other.Address) &&
		p.MatriculationNumber.Equals(other.MatriculationNumber) &&
		p.Gender.Equals(other.Gender) &&
		p.Block.Equals(other.Block) &&
		p.Room.Equals(other.Room) &&
		p.Groups.Equal(other.Groups)
}
