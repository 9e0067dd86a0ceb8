package person

import (
	"regexp"

	"github.com/SimonDaKappa/pave-fields/field"
)

// Constraint messages for the residence fields.
const (
	MessageBlock = "Blocks should be a single uppercase letter, optionally followed by a digit, e.g. A or E2"
	MessageRoom  = "Rooms should be of the format floor-unit, where floor has 1 to 2 digits " +
		"and unit has 1 to 3 digits, e.g. 5-12"
)

var (
	blockPattern = regexp.MustCompile(`^[A-Z][0-9]?$`)
	roomPattern  = regexp.MustCompile(`^[0-9]{1,2}-[0-9]{1,3}$`)
)

// Block is the residential block a person lives in.
type Block struct {
	value string
}

// Room is a room within a Block, written floor-unit.
type Room struct {
	value string
}

var (
	blockKind = field.NewKind("block", MessageBlock, IsValidBlock, func(s string) Block {
		return Block{value: s}
	})
	roomKind = field.NewKind("room", MessageRoom, IsValidRoom, func(s string) Room {
		return Room{value: s}
	})
)

func BlockKind() field.Kind[Block] { return blockKind }
func RoomKind() field.Kind[Room]   { return roomKind }

func IsValidBlock(s string) bool { return blockPattern.MatchString(s) }
func IsValidRoom(s string) bool  { return roomPattern.MatchString(s) }

func (b Block) String() string { return b.value }
func (b Block) IsZero() bool   { return b.value == "" }

func (b Block) Equals(other Block) bool {
	return b.value == other.value
}

func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.value), nil
}

func (b *Block) UnmarshalText(text []byte) error {
	v, err := blockKind.Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (r Room) String() string { return r.value }
func (r Room) IsZero() bool   { return r.value == "" }

func (r Room) Equals(other Room) bool {
	return r.value == other.value
}

func (r Room) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

func (r *Room) UnmarshalText(text []byte) error {
	v, err := roomKind.Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
