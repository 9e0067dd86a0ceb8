package person

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageAddress is the constraint message reported for an invalid Address.
const MessageAddress = "Addresses can take any values, and it should not be blank"

// Address is a free form, single line postal address.
type Address struct {
	value string
}

var addressKind = field.NewKind("address", MessageAddress, IsValidAddress, func(s string) Address {
	return Address{value: s}
})

// AddressKind returns the field kind guarding Address.
func AddressKind() field.Kind[Address] {
	return addressKind
}

// IsValidAddress accepts any valid UTF-8 line that does not start with
// white space. Line breaks are rejected.
func IsValidAddress(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsSpace(first) {
		return false
	}
	return !strings.ContainsAny(s, "\n\r\u0085\u2028\u2029")
}

func (a Address) String() string { return a.value }
func (a Address) IsZero() bool   { return a.value == "" }

func (a Address) Equals(other Address) bool {
	return a.value == other.value
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	v, err := addressKind.Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
