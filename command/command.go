// Package command holds the argument descriptors of the person commands.
//
// Each descriptor is a tagged struct that pave binds from either tokenized
// command line arguments or a JSON payload. Binding a descriptor validates
// every field it receives; a descriptor that fails is left zeroed.
package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	pave "github.com/SimonDaKappa/pave-fields"
)

// Argument prefixes understood by the person commands.
const (
	PrefixName                = "n/"
	PrefixPhone               = "p/"
	PrefixEmail               = "e/"
	PrefixAddress             = "a/"
	PrefixMatriculationNumber = "m/"
	PrefixGender              = "g/"
	PrefixBlock               = "b/"
	PrefixRoom                = "r/"
	PrefixGroup               = "t/"
)

// Command words.
const (
	WordAdd    = "add"
	WordEdit   = "edit"
	WordDelete = "delete"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
)

// Prefixes lists every prefix in the order they are documented.
func Prefixes() []string {
	return []string{
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixMatriculationNumber, PrefixGender, PrefixBlock, PrefixRoom, PrefixGroup,
	}
}

// Descriptor is a bindable command argument struct.
type Descriptor interface {
	pave.Validatable
	// Word is the command word the descriptor belongs to.
	Word() string
	// Correlation returns the request correlation ID, assigning a fresh one
	// when the source did not carry one.
	Correlation() uuid.UUID
}

// New returns an empty descriptor for word.
func New(word string) (Descriptor, error) {
	switch word {
	case WordAdd:
		return &AddPerson{}, nil
	case WordEdit:
		return &EditPerson{}, nil
	case WordDelete:
		return &DeletePerson{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
}

// Words lists every command word New accepts.
func Words() []string {
	return []string{WordAdd, WordEdit, WordDelete}
}

// FromArguments tokenizes args and binds them into the descriptor for word.
func FromArguments(word, args string) (Descriptor, error) {
	d, err := New(word)
	if err != nil {
		return nil, err
	}
	if err := pave.Parse(pave.Tokenize(args, Prefixes()...), d, true); err != nil {
		return nil, err
	}
	return d, nil
}

// FromJSON binds a JSON payload into the descriptor for word.
func FromJSON(word string, payload []byte) (Descriptor, error) {
	d, err := New(word)
	if err != nil {
		return nil, err
	}
	src := pave.JSONArguments(payload)
	if err := pave.Parse(&src, d, true); err != nil {
		return nil, err
	}
	return d, nil
}

func ensureID(id *uuid.UUID) uuid.UUID {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	return *id
}
