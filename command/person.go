package command

import (
	"errors"

	"github.com/google/uuid"

	"github.com/SimonDaKappa/pave-fields/index"
	"github.com/SimonDaKappa/pave-fields/person"
	"github.com/SimonDaKappa/pave-fields/studentgroup"
)

const MessageNotEdited = "At least one field to edit must be provided."

var (
	ErrNotEdited = errors.New(MessageNotEdited)
)

// AddPerson carries the arguments of the add command. Every field except the
// groups is required.
type AddPerson struct {
	CorrelationID       uuid.UUID                  `parse:"json:'correlation_id,omitempty'" json:"correlation_id" yaml:"correlation_id"`
	Name                person.Name                `parse:"arg:'n/' json:'name'" json:"name" yaml:"name"`
	Phone               person.Phone               `parse:"arg:'p/' json:'phone'" json:"phone" yaml:"phone"`
	Email               person.Email               `parse:"arg:'e/' json:'email'" json:"email" yaml:"email"`
	Address             person.Address             `parse:"arg:'a/' json:'address'" json:"address" yaml:"address"`
	MatriculationNumber person.MatriculationNumber `parse:"arg:'m/' json:'matriculation_number'" json:"matriculation_number" yaml:"matriculation_number"`
	Gender              person.Gender              `parse:"arg:'g/' json:'gender'" json:"gender" yaml:"gender"`
	Block               person.Block               `parse:"arg:'b/' json:'block'" json:"block" yaml:"block"`
	Room                person.Room                `parse:"arg:'r/' json:'room'" json:"room" yaml:"room"`
	Groups              studentgroup.Set           `parse:"args:'t/,omitempty' json:'groups,omitempty'" json:"groups" yaml:"groups"`
}

func (c *AddPerson) Word() string { return WordAdd }

func (c *AddPerson) Correlation() uuid.UUID { return ensureID(&c.CorrelationID) }

// Validate has nothing left to check once every field was bound.
func (c *AddPerson) Validate() error { return nil }

// Person builds the person to add.
func (c *AddPerson) Person() person.Person {
	return person.Person{
		Name:                c.Name,
		Phone:               c.Phone,
		Email:               c.Email,
		Address:             c.Address,
		MatriculationNumber: c.MatriculationNumber,
		Gender:              c.Gender,
		Block:               c.Block,
		Room:                c.Room,
		Groups:              c.Groups,
	}
}

// EditPerson carries the arguments of the edit command. A nil field is left
// as it is on the edited person. A non-nil empty Groups clears the groups.
type EditPerson struct {
	CorrelationID       uuid.UUID                   `parse:"json:'correlation_id,omitempty'" json:"correlation_id" yaml:"correlation_id"`
	Index               index.Index                 `parse:"preamble:'_' json:'index'" json:"index" yaml:"index"`
	Name                *person.Name                `parse:"arg:'n/,omitempty' json:'name,omitempty'" json:"name,omitempty" yaml:"name,omitempty"`
	Phone               *person.Phone               `parse:"arg:'p/,omitempty' json:'phone,omitempty'" json:"phone,omitempty" yaml:"phone,omitempty"`
	Email               *person.Email               `parse:"arg:'e/,omitempty' json:'email,omitempty'" json:"email,omitempty" yaml:"email,omitempty"`
	Address             *person.Address             `parse:"arg:'a/,omitempty' json:'address,omitempty'" json:"address,omitempty" yaml:"address,omitempty"`
	MatriculationNumber *person.MatriculationNumber `parse:"arg:'m/,omitempty' json:'matriculation_number,omitempty'" json:"matriculation_number,omitempty" yaml:"matriculation_number,omitempty"`
	Gender              *person.Gender              `parse:"arg:'g/,omitempty' json:'gender,omitempty'" json:"gender,omitempty" yaml:"gender,omitempty"`
	Block               *person.Block               `parse:"arg:'b/,omitempty' json:'block,omitempty'" json:"block,omitempty" yaml:"block,omitempty"`
	Room                *person.Room                `parse:"arg:'r/,omitempty' json:'room,omitempty'" json:"room,omitempty" yaml:"room,omitempty"`
	Groups              *studentgroup.Set           `parse:"args:'t/,omitempty' json:'groups,omitempty'" json:"groups,omitempty" yaml:"groups,omitempty"`
}

func (c *EditPerson) Word() string { return WordEdit }

func (c *EditPerson) Correlation() uuid.UUID { return ensureID(&c.CorrelationID) }

// Validate rejects an edit that changes nothing.
func (c *EditPerson) Validate() error {
	if !c.IsAnyFieldEdited() {
		return ErrNotEdited
	}
	return nil
}

func (c *EditPerson) IsAnyFieldEdited() bool {
	return c.Name != nil || c.Phone != nil || c.Email != nil || c.Address != nil ||
		c.MatriculationNumber != nil || c.Gender != nil || c.Block != nil ||
		c.Room != nil || c.Groups != nil
}

// Apply returns p with every edited field replaced.
func (c *EditPerson) Apply(p person.Person) person.Person {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Address != nil {
		p.Address = *c.Address
	}
	if c.MatriculationNumber != nil {
		p.MatriculationNumber = *c.MatriculationNumber
	}
	if c.Gender != nil {
		p.Gender = *c.Gender
	}
	if c.Block != nil {
		p.Block = *c.Block
	}
	if c.Room != nil {
		p.Room = *c.Room
	}
	if c.Groups != nil {
		p.Groups = *c.Groups
	}
	return p
}

// DeletePerson carries the arguments of the delete command.
type DeletePerson struct {
	CorrelationID uuid.UUID   `parse:"json:'correlation_id,omitempty'" json:"correlation_id" yaml:"correlation_id"`
	Index         index.Index `parse:"preamble:'_' json:'index'" json:"index" yaml:"index"`
}

func (c *DeletePerson) Word() string { return WordDelete }

func (c *DeletePerson) Correlation() uuid.UUID { return ensureID(&c.CorrelationID) }

func (c *DeletePerson) Validate() error { return nil }
