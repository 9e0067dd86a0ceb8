package pave

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	// ErrNoStepBindings is returned when a field carries no parse tag, or
	// only bindings for other parsers. Such fields are skipped in the chain.
	ErrNoStepBindings   = errors.New("no bindings found for field")
	ErrFailedToParseTag = errors.New("failed to parse tag for field")
	ErrMissingBinding   = errors.New("no value found for required field")
	ErrNilParseChain    = errors.New("parse chain is empty for type")
	ErrNotAStructType   = errors.New("parse chains can only be built for struct types")
	ErrNoBindingsInTag  = errors.New("parse tag declares no bindings")
)

// ParseChain represents a linked list of parse steps for a struct type.
//
// # It takes one generic type S
//
// S is the Go Type that data will be sourced from (e.g Arguments)
type ParseChain[S any] struct {
	StructType reflect.Type          // StructType is the type of the struct being parsed
	Head       *ParseStep[S]         // Head is the first step in the chain
	Handler    BindingHandlerFunc[S] // Function to get values from sources
}

// ParseStep represents a single step in the chain
type ParseStep[S any] struct {
	Next         *ParseStep[S] // Next is the next step in the current chain.
	Bindings     []Binding     // Ordered list of bindings to try
	FieldName    string        // Name of the field for error reporting
	DefaultValue DefaultTag    // Default value for the field if no binding finds a value
	FieldIndex   int           // Index of the field in the struct
}

// Execute runs every step of the chain against source, filling dest.
// It stops at the first failing step.
func (chain *ParseChain[S]) Execute(source *S, dest any) error {
	if chain.Head == nil {
		return fmt.Errorf("%w: %s", ErrNilParseChain, chain.StructType.Name())
	}

	destValue := reflect.ValueOf(dest)
	if destValue.Kind() == reflect.Ptr {
		destValue = destValue.Elem()
	}

	for current := chain.Head; current != nil; current = current.Next {
		field := destValue.Field(current.FieldIndex)
		if !field.CanSet() {
			continue
		}
		if err := chain.doStep(source, field, current); err != nil {
			return fmt.Errorf("failed to parse field %s: %w", current.FieldName, err)
		}
	}
	return nil
}

// doStep tries each binding in order. The first one that finds a value wins.
func (chain *ParseChain[S]) doStep(source *S, field reflect.Value, step *ParseStep[S]) error {
	allOmitEmpty := true

	for _, binding := range step.Bindings {
		allOmitEmpty = allOmitEmpty && binding.Modifiers.OmitEmpty

		result := chain.Handler(source, binding)
		if result.Error != nil {
			return result.Error
		}
		if !result.Found {
			continue
		}

		if result.List {
			return setFieldValues(field, result.Values)
		}
		return setFieldValue(field, result.Value)
	}

	if step.DefaultValue.Present {
		return setFieldValue(field, step.DefaultValue.Value)
	}
	if allOmitEmpty {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingBinding, describeBindings(step.Bindings))
}

func describeBindings(bindings []Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Name + " " + b.Identifier
	}
	return strings.Join(parts, " or ")
}

// ParseChainManager manages parse chains for different destination struct
// types of a single source type S.
//
// It builds chains on first use and caches them by destination type. It is
// safe for concurrent use.
type ParseChainManager[S any] struct {
	chains  map[reflect.Type]*ParseChain[S] // Keyed by destination struct type.
	mu      sync.RWMutex
	opts    ParseChainManagerOpts
	handler BindingHandlerFunc[S]
}

type ParseChainManagerOpts struct {
	ParseTagOpts
}

func NewParseChainManager[S any](
	handler BindingHandlerFunc[S],
	opts ParseChainManagerOpts,
) *ParseChainManager[S] {

	return &ParseChainManager[S]{
		chains:  make(map[reflect.Type]*ParseChain[S]),
		opts:    opts,
		handler: handler,
	}
}

// GetParseChain retrieves a parse chain for the given destination struct type.
//
// If not found, it will create a new parse chain for the type and cache it.
func (cman *ParseChainManager[S]) GetParseChain(typ reflect.Type) (*ParseChain[S], error) {
	cman.mu.RLock()
	chain, exists := cman.chains[typ]
	cman.mu.RUnlock()

	if exists {
		return chain, nil
	}

	chain, err := cman.NewParseChain(typ)
	if err != nil {
		return nil, err
	}

	cman.mu.Lock()
	// Another goroutine may have won the race; keep the first chain
	if existing, ok := cman.chains[typ]; ok {
		chain = existing
	} else {
		cman.chains[typ] = chain
	}
	cman.mu.Unlock()

	return chain, nil
}

// CachedChains reports how many destination types have a cached chain.
func (cman *ParseChainManager[S]) CachedChains() int {
	cman.mu.RLock()
	defer cman.mu.RUnlock()
	return len(cman.chains)
}

// NewParseChain builds an uncached chain for typ.
func (cman *ParseChainManager[S]) NewParseChain(typ reflect.Type) (*ParseChain[S], error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotAStructType, typ)
	}

	var head, current *ParseStep[S]

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if !field.IsExported() {
			continue
		}

		step, err := cman.NewParseStep(field, i)
		if err != nil {
			if errors.Is(err, ErrNoStepBindings) {
				continue
			}
			return nil, err
		}

		if head == nil {
			head = step
		} else {
			current.Next = step
		}
		current = step
	}

	return &ParseChain[S]{
		StructType: typ,
		Head:       head,
		Handler:    cman.handler,
	}, nil
}

func (cman *ParseChainManager[S]) NewParseStep(field reflect.StructField, index int) (*ParseStep[S], error) {
	if _, ok := field.Tag.Lookup(ParseTagPrefix); !ok {
		return nil, ErrNoStepBindings
	}

	bindings, defaultTag, err := GetBindings(field, cman.opts.ParseTagOpts)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToParseTag, field.Name, err)
	}
	if len(bindings) == 0 {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToParseTag, field.Name, ErrNoBindingsInTag)
	}

	return &ParseStep[S]{
		FieldIndex:   index,
		FieldName:    field.Name,
		Bindings:     bindings,
		DefaultValue: defaultTag,
	}, nil
}
