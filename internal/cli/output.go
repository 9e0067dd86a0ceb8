package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/SimonDaKappa/pave-fields/internal/config"
)

// render writes v in format. text is used for the text format.
func render(w io.Writer, format string, v any, text string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

type checkResult struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

type indexResult struct {
	OneBased  int `json:"one_based" yaml:"one_based"`
	ZeroBased int `json:"zero_based" yaml:"zero_based"`
}

type groupsResult struct {
	Groups []string `json:"groups" yaml:"groups"`
}

type bindResult struct {
	Command string `json:"command" yaml:"command"`
	Args    any    `json:"args" yaml:"args"`
}
