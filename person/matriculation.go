package person

import (
	"regexp"

	"github.com/SimonDaKappa/pave-fields/field"
)

// MessageMatriculationNumber is the constraint message reported for an
// invalid MatriculationNumber.
const MessageMatriculationNumber = "Matriculation numbers should start with 'A', followed by 7 digits, " +
	"and end with an uppercase letter, e.g. A0123456X"

var matriculationPattern = regexp.MustCompile(`^A[0-9]{7}[A-Z]$`)

// MatriculationNumber is a student's matriculation number, e.g. A0123456X.
type MatriculationNumber struct {
	value string
}

var matriculationKind = field.NewKind(
	"matriculation number",
	MessageMatriculationNumber,
	IsValidMatriculationNumber,
	func(s string) MatriculationNumber { return MatriculationNumber{value: s} },
)

func MatriculationNumberKind() field.Kind[MatriculationNumber] {
	return matriculationKind
}

func IsValidMatriculationNumber(s string) bool {
	return matriculationPattern.MatchString(s)
}

func (m MatriculationNumber) String() string { return m.value }
func (m MatriculationNumber) IsZero() bool   { return m.value == "" }

func (m MatriculationNumber) Equals(other MatriculationNumber) bool {
	return m.value == other.value
}

func (m MatriculationNumber) MarshalText() ([]byte, error) {
	return []byte(m.value), nil
}

func (m *MatriculationNumber) UnmarshalText(text []byte) error {
	v, err := matriculationKind.Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
