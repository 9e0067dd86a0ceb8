package pave

import (
	"reflect"

	"github.com/google/uuid"
)

// constants for subtag prefixes in parse subtag
const (
	ParseTagPrefix              = "parse"
	DefaultValueSubTagPrefix    = "default"
	DefaultSubTagScopeDelimiter = byte('\'')
	DefaultKeyValueTagDelimiter = ":"
	BindingInfoDelimiter        = ","
)

// constants for builtin source bindings in parse subtag
const (
	PreambleTagBinding = "preamble"
	ArgTagBinding      = "arg"
	ArgsTagBinding     = "args"
	JsonTagBinding     = "json"
)

// constants for builtin source binding modifiers
const (
	OmitEmptyBindingModifier = "omitempty"
	RequiredBindingModifier  = "required"
)

// Parser Name constants for built in parsers.
const (
	ArgumentsParserName     = "arguments-parser"
	JSONArgumentsParserName = "json-arguments-parser"
)

// reflect.TypeOf constants for type checks
var (
	UUIDType              = reflect.TypeOf(uuid.UUID{})
	StringSliceType       = reflect.TypeOf([]string{})
	TextListUnmarshalType = reflect.TypeOf((*TextListUnmarshaler)(nil)).Elem()
)

// TextListUnmarshaler is implemented by collection types that decode
// themselves from every value supplied for a list binding.
type TextListUnmarshaler interface {
	UnmarshalTextList(values []string) error
}
