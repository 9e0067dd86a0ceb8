package pave

// Binding represents a complete view of a single possible value
// binding for a field. Multiple Bindings are usually defined per field.
type Binding struct {
	Name       string           // The name of the interaction method with the source type
	Identifier string           // The identifier of this specific field on the interaction method
	Modifiers  BindingModifiers // Additional modifiers for the source
}

// BindingModifiers represents additional modifiers for a binding.
//
// The built-in modifiers control failure and fallback
// behavior for a single binding.
type BindingModifiers struct {
	Required  bool // If true, a missing value fails the field unless a default is given
	OmitEmpty bool // If true, skip this source if not found
}

type BindingOpts struct {
	AllowedBindingNames []string
	// IgnoredBindingNames belong to other parsers. They are dropped instead
	// of rejected, so one struct can carry tags for several sources.
	IgnoredBindingNames []string
}

// BindingResult is what a source reports for a single binding.
//
// A scalar lookup sets Value; a list lookup sets Values and List. Found is
// false when the source has nothing for the identifier.
type BindingResult struct {
	Value  string
	Values []string
	List   bool
	Found  bool
	Error  error
}

func NotFound() BindingResult {
	return BindingResult{}
}

func Scalar(value string) BindingResult {
	return BindingResult{Value: value, Found: true}
}

func List(values []string) BindingResult {
	return BindingResult{Values: values, List: true, Found: true}
}

func BindingError(err error) BindingResult {
	return BindingResult{Error: err}
}

type BindingHandlerFunc[S any] func(source *S, binding Binding) BindingResult

// BindingManager looks up binding values on a source. C is data computed once
// per source and shared by every binding lookup of a single Parse call.
type BindingManager[S any, C any] interface {
	NewCached(source *S) C
	BindingHandler(source *S, binding Binding) BindingResult
	BindingHandlerCached(source *S, entry *CacheEntry[C], binding Binding) BindingResult
}
