package person

import (
	"regexp"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageEmail is the constraint message reported for an invalid Email.
const MessageEmail = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (+_.-). The local-part may not start or end with any special characters, " +
	"and special characters may not be adjacent.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of at least two " +
	"domain labels separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	emailLocalPart      = `[A-Za-z0-9]+([+_.\-][A-Za-z0-9]+)*`
	emailDomainLabel    = `[A-Za-z0-9]+(-[A-Za-z0-9]+)*`
	emailLastLabel      = `[A-Za-z0-9](-?[A-Za-z0-9])+`
	emailPatternLiteral = `^` + emailLocalPart + `@(` + emailDomainLabel + `\.)+` + emailLastLabel + `$`
)

var emailPattern = regexp.MustCompile(emailPatternLiteral)

// Email is an email address of the form local-part@domain.
type Email struct {
	value string
}

var emailKind = field.NewKind("email", MessageEmail, IsValidEmail, func(s string) Email {
	return Email{value: s}
})

// EmailKind returns the field kind guarding Email.
func EmailKind() field.Kind[Email] {
	return emailKind
}

// IsValidEmail reports whether s is a valid email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

func (e *Email) UnmarshalText(text []byte) error {
	v, err := emailKind.Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
