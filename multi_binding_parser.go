package pave

import (
	"fmt"
	"reflect"
)

// BaseMBParser is a mostly implemented template for a multi binding Parser.
//
// It builds, caches and executes parse chains, handles type erasure for the
// source type, and optionally caches data derived from a source for the
// duration of one Parse call.
//
// It takes two type parameters:
//   - S: The type of the source that this parser works with. DO NOT use a
//     pointer. IT WILL PANIC. Parse takes a pointer to S instead.
//   - C: The type of the per source data handed to BindingHandlerCached,
//     typically something expensive to derive from S (a decoded document).
type BaseMBParser[S any, C any] struct {
	PCMgr     *ParseChainManager[S]
	BMgr      BindingManager[S, C]
	BCache    *BindingCache[S, C]
	useBCache bool
}

type BaseMBParserOpts struct {
	PCMOpts  ParseChainManagerOpts
	UseCache bool
}

func NewBaseMBParser[S any, C any](
	bMgr BindingManager[S, C],
	opts BaseMBParserOpts,
) *BaseMBParser[S, C] {

	if bMgr == nil {
		return nil
	}

	// Pointer sources break the address keyed cache
	if reflect.TypeOf((*S)(nil)).Elem().Kind() == reflect.Ptr {
		panic(fmt.Sprintf(
			"Generic %T cannot be a pointer (breaks cache). "+
				"Use a non-pointer for type constraint",
			*new(S),
		))
	}

	template := &BaseMBParser[S, C]{
		BMgr:      bMgr,
		useBCache: opts.UseCache,
	}
	template.PCMgr = NewParseChainManager(template.BindingHandlerAdapter, opts.PCMOpts)

	if opts.UseCache {
		template.BCache = NewBindingCache[S, C]()
	}

	return template
}

// SourceType returns the pointer type *S that Parse accepts.
func (base *BaseMBParser[S, C]) SourceType() reflect.Type {
	return reflect.TypeOf((*S)(nil))
}

// Parse executes the parse chain for the given source and populates the
// destination struct.
//
// Both arguments must be pointers:
//   - source: A pointer to the source type that this parser works with.
//   - dest: A pointer to the destination struct that will be populated with the
//     parsed data
func (base *BaseMBParser[S, C]) Parse(source any, dest any) error {
	typedSource, ok := source.(*S)
	if !ok || typedSource == nil {
		return fmt.Errorf("expected source type %T, got %T", new(S), source)
	}

	if err := checkDestination(dest); err != nil {
		return err
	}

	return base.parse(typedSource, dest)
}

func (base *BaseMBParser[S, C]) parse(source *S, dest any) error {
	chain, err := base.PCMgr.GetParseChain(reflect.TypeOf(dest).Elem())
	if err != nil {
		return err
	}

	if base.useBCache {
		defer base.BCache.Delete(source)
	}
	// Fields this source does not bind must not keep an earlier parse's values
	if err := zeroValue(dest); err != nil {
		return err
	}
	return chain.Execute(source, dest)
}

// BindingHandlerAdapter routes a binding lookup to the cached or uncached
// handler of the BindingManager.
func (base *BaseMBParser[S, C]) BindingHandlerAdapter(source *S, binding Binding) BindingResult {
	if base.useBCache {
		entry := base.BCache.GetOrCreate(source, base.BMgr.NewCached)
		return base.BMgr.BindingHandlerCached(source, entry, binding)
	}
	return base.BMgr.BindingHandler(source, binding)
}

func checkDestination(dest any) error {
	if dest == nil {
		return fmt.Errorf("dest cannot be nil")
	}
	typ := reflect.TypeOf(dest)
	if typ.Kind() != reflect.Ptr || reflect.ValueOf(dest).IsNil() || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a non-nil pointer to a struct, got %T", dest)
	}
	return nil
}
