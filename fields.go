package pave

import (
	"github.com/SimonDaKappa/pave-fields/index"
	"github.com/SimonDaKappa/pave-fields/person"
	"github.com/SimonDaKappa/pave-fields/studentgroup"
)

///////////////////////////////////////////////////////////////////////////////
// Field Parsers
///////////////////////////////////////////////////////////////////////////////

// Each of these trims raw and validates it against its field kind. On failure
// the returned error is a *field.FormatError whose message is the kind's
// constraint message.

// MessageInvalidIndex is reported by ParseIndex.
const MessageInvalidIndex = index.MessageInvalidIndex

// ParseIndex parses a one-based position such as "3".
func ParseIndex(raw string) (index.Index, error) {
	return index.Parse(raw)
}

// ParseName parses a person's name.
func ParseName(raw string) (person.Name, error) {
	return person.NameKind().Parse(raw)
}

// ParsePhone parses a phone number of at least 3 digits.
func ParsePhone(raw string) (person.Phone, error) {
	return person.PhoneKind().Parse(raw)
}

// ParseAddress parses a single line address.
func ParseAddress(raw string) (person.Address, error) {
	return person.AddressKind().Parse(raw)
}

// ParseEmail parses an email address.
func ParseEmail(raw string) (person.Email, error) {
	return person.EmailKind().Parse(raw)
}

// ParseMatriculationNumber parses a matriculation number such as "A0123456X".
func ParseMatriculationNumber(raw string) (person.MatriculationNumber, error) {
	return person.MatriculationNumberKind().Parse(raw)
}

// ParseGender parses "M" or "F".
func ParseGender(raw string) (person.Gender, error) {
	return person.GenderKind().Parse(raw)
}

// ParseBlock parses a residence block such as "E" or "E2".
func ParseBlock(raw string) (person.Block, error) {
	return person.BlockKind().Parse(raw)
}

// ParseRoom parses a residence room such as "5-12".
func ParseRoom(raw string) (person.Room, error) {
	return person.RoomKind().Parse(raw)
}

// ParseStudentGroup parses one student group name.
func ParseStudentGroup(raw string) (studentgroup.StudentGroup, error) {
	return studentgroup.Parse(raw)
}

// ParseGroups parses every raw group name into a deduplicated set. It stops
// at the first invalid name and returns an empty set with that error.
func ParseGroups(raws []string) (studentgroup.Set, error) {
	return studentgroup.ParseSet(raws)
}
