package pave

import (
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Parser Interface
///////////////////////////////////////////////////////////////////////////////

// Parser binds values held by a source into a destination struct.
//
// A Parser serves exactly one source type. Several parsers may serve the same
// source type as long as their names differ.
//
// # The following are implemented by default:
//   - ArgumentsParser: binds from *Arguments using the `preamble`, `arg` and
//     `args` bindings.
//   - JSONArgumentsParser: binds from *JSONArguments using the `json`
//     binding, whose identifier is a gjson path.
type Parser interface {
	// Parse extracts values from source and populates dest, which must be a
	// non-nil pointer to a struct.
	Parse(source any, dest any) error
	// SourceType returns the reflect.Type of the source this parser works with
	SourceType() reflect.Type
	// Name returns a unique identifier for this parser within its source type
	Name() string
}

// Validatable destinations are checked after every field was bound.
type Validatable interface {
	Validate() error
}
