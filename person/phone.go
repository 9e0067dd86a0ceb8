package person

import (
	"github.com/SimonDaKappa/pave-fields/field"
)

// MessagePhone is the constraint message reported for an invalid Phone.
const MessagePhone = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

const minPhoneDigits = 3

// Phone is a phone number made of ASCII digits only.
type Phone struct {
	value string
}

var phoneKind = field.NewKind("phone", MessagePhone, IsValidPhone, func(s string) Phone {
	return Phone{value: s}
})

// PhoneKind returns the field kind guarding Phone.
func PhoneKind() field.Kind[Phone] {
	return phoneKind
}

// IsValidPhone reports whether s holds at least three ASCII digits and
// nothing else.
func IsValidPhone(s string) bool {
	if len(s) < minPhoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

func (p Phone) Equals(other Phone) bool {
	return p.value == other.value
}

func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func (p *Phone) UnmarshalText(text []byte) error {
	v, err := phoneKind.Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
