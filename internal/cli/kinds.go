package cli

import (
	"fmt"
	"sort"

	pave "github.com/SimonDaKappa/pave-fields"
)

type kindParser func(raw string) (string, error)

func asText[T fmt.Stringer](parse func(string) (T, error)) kindParser {
	return func(raw string) (string, error) {
		v, err := parse(raw)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
}

var kinds = map[string]kindParser{
	"name":          asText(pave.ParseName),
	"phone":         asText(pave.ParsePhone),
	"email":         asText(pave.ParseEmail),
	"address":       asText(pave.ParseAddress),
	"matriculation": asText(pave.ParseMatriculationNumber),
	"gender":        asText(pave.ParseGender),
	"block":         asText(pave.ParseBlock),
	"room":          asText(pave.ParseRoom),
	"index":         asText(pave.ParseIndex),
	"group": func(raw string) (string, error) {
		g, err := pave.ParseStudentGroup(raw)
		if err != nil {
			return "", err
		}
		return g.Name(), nil
	},
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
