package pave

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrParserAlreadyRegistered  = errors.New("a parser with this name for this source-type is already registered")
	ErrNoParserRegistered       = errors.New("no registered parser found for this type")
	ErrMultipleParsersAvailable = errors.New("multiple parsers available for this source type, use WithParser() to specify which one")
	ErrParserNotFound           = errors.New("specified parser not found for this source type")
	ErrValidationFailed         = errors.New("validation failed")
)

// ParserRegistry binds sources into destination structs using registered
// Parsers.
//
// Multiple Parsers can be registered for each source type. If only one parser
// is registered for a type, it will be used automatically. If multiple parsers
// are registered, you must use WithParser() to specify which one to use.
//
// A destination is either fully populated or zeroed: any binding or
// validation failure resets it.
type ParserRegistry struct {
	mu sync.RWMutex
	m  map[reflect.Type]map[string]Parser // source type -> parser name -> parser
}

// ParserRegistryContext provides a curried Registry with a specific parser selection
type ParserRegistryContext struct {
	registry   *ParserRegistry
	parserName string
}

type ParserRegistryOpts struct {
	Parsers         []Parser
	ExcludeDefaults bool
}

func defaultParsers() []Parser {
	return []Parser{
		NewArgumentsParser(),
		NewJSONArgumentsParser(),
	}
}

func NewParserRegistry(opts ParserRegistryOpts) (*ParserRegistry, error) {
	reg := &ParserRegistry{
		m: make(map[reflect.Type]map[string]Parser),
	}

	if !opts.ExcludeDefaults {
		for _, parser := range defaultParsers() {
			if err := reg.Register(parser); err != nil {
				return nil, err
			}
		}
	}

	for _, parser := range opts.Parsers {
		if err := reg.Register(parser); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func (reg *ParserRegistry) Register(parser Parser) error {
	typ := parser.SourceType()
	name := parser.Name()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.m[typ] == nil {
		reg.m[typ] = make(map[string]Parser)
	}
	if _, exists := reg.m[typ][name]; exists {
		return fmt.Errorf("%w: %s for %s", ErrParserAlreadyRegistered, name, typ)
	}

	reg.m[typ][name] = parser
	return nil
}

// WithParser returns a ParserRegistryContext that will use the specified
// parser. This is useful when multiple parsers are registered for the same
// source type.
func (reg *ParserRegistry) WithParser(parserName string) *ParserRegistryContext {
	return &ParserRegistryContext{
		registry:   reg,
		parserName: parserName,
	}
}

// Parse populates dest with the selected parser.
func (regCtx *ParserRegistryContext) Parse(source any, dest any, validate bool) error {
	if err := checkDestination(dest); err != nil {
		return err
	}
	parser, err := regCtx.registry.getParserByName(source, regCtx.parserName)
	if err != nil {
		return err
	}
	return regCtx.registry.parseWith(parser, source, dest, validate)
}

// Parse populates dest based on the implementation of source's
// parsing logic.
//
// It only succeeds if there is exactly one parser registered
// for source's type. To use a specific parser, you must
// use the WithParser() method to specify which one to use.
//
// # It expects dest to be a non-nil pointer to a struct
//
// If validate is set and dest is Validatable, Validate runs after binding.
// On any failure all of dest's fields are zeroed.
func (reg *ParserRegistry) Parse(source any, dest any, validate bool) error {
	if err := checkDestination(dest); err != nil {
		return err
	}
	parser, err := reg.tryGetDefaultParser(source)
	if err != nil {
		return err
	}
	return reg.parseWith(parser, source, dest, validate)
}

func (reg *ParserRegistry) parseWith(parser Parser, source any, dest any, validate bool) error {
	if err := parser.Parse(source, dest); err != nil {
		_ = reg.Invalidate(dest)
		return fmt.Errorf("failed to parse with %s: %w", parser.Name(), err)
	}

	if v, ok := dest.(Validatable); ok && validate {
		if err := v.Validate(); err != nil {
			_ = reg.Invalidate(dest)
			return fmt.Errorf("%w after parsing with %s: %w", ErrValidationFailed, parser.Name(), err)
		}
	}

	return nil
}

// tryGetDefaultParser retrieves the only parser registered for source's type.
func (reg *ParserRegistry) tryGetDefaultParser(source any) (Parser, error) {
	return reg.getParserByName(source, "")
}

// getParserByName retrieves a specific parser by name for the given data type.
//
// No name provided: If there is only one parser registered for the type,
// it returns that parser. If multiple parsers are registered, it returns an error
func (reg *ParserRegistry) getParserByName(source any, parserName string) (Parser, error) {
	t := reflect.TypeOf(source)

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	parsersForType, exists := reg.m[t]
	if !exists || len(parsersForType) == 0 {
		if parserName == "" {
			return nil, fmt.Errorf("%w: %v", ErrNoParserRegistered, t)
		}
		return nil, fmt.Errorf("%w: %s for %v", ErrParserNotFound, parserName, t)
	}

	if parserName == "" {
		if len(parsersForType) > 1 {
			return nil, fmt.Errorf("%w: %v", ErrMultipleParsersAvailable, t)
		}
		for _, parser := range parsersForType {
			return parser, nil
		}
	}

	if parser, found := parsersForType[parserName]; found {
		return parser, nil
	}
	return nil, fmt.Errorf("%w: %s for %v", ErrParserNotFound, parserName, t)
}

// Invalidate clears a partially or fully populated dest by
// setting each field to its zero value.
//
// # It expects the passed dest to be a pointer
func (reg *ParserRegistry) Invalidate(dest any) error {
	return zeroValue(dest)
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gParserRegistry *ParserRegistry

func init() {
	var err error
	_gParserRegistry, err = NewParserRegistry(ParserRegistryOpts{ExcludeDefaults: false})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize global ParserRegistry: %v", err))
	}
}

// Package-level functions that delegate to the global ParserRegistry instance

func RegisterParser(parser Parser) error {
	return _gParserRegistry.Register(parser)
}

func Parse(source any, dest any, validate bool) error {
	return _gParserRegistry.Parse(source, dest, validate)
}

func WithParser(parserName string) *ParserRegistryContext {
	return _gParserRegistry.WithParser(parserName)
}

func Invalidate(dest any) error {
	return _gParserRegistry.Invalidate(dest)
}

func GetParser(source any) (Parser, error) {
	return _gParserRegistry.tryGetDefaultParser(source)
}

func GetParserByName(source any, parserName string) (Parser, error) {
	return _gParserRegistry.getParserByName(source, parserName)
}
