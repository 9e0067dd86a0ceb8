package pave

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateArgument = errors.New("multiple values given for single-valued prefix")
)

// Arguments is the output of a command line tokenizer: the text before the
// first prefix (the preamble) and every value given for each prefix, in the
// order they were written.
type Arguments struct {
	preamble string
	values   map[string][]string
}

func NewArguments(preamble string) *Arguments {
	return &Arguments{
		preamble: preamble,
		values:   make(map[string][]string),
	}
}

// Tokenize splits argsString on the given prefixes. A prefix only counts at
// the start of the string or after white space, so "a/b" inside a value is
// kept as is. Values are not trimmed; field kinds trim them when parsing.
//
// Example: Tokenize(" 1 n/Alex p/123", "n/", "p/") has preamble " 1 " and
// values "Alex " for n/ and "123" for p/.
func Tokenize(argsString string, prefixes ...string) *Arguments {
	type hit struct {
		pos    int
		prefix string
	}

	var hits []hit
	for i := 0; i < len(argsString); i++ {
		if i > 0 && argsString[i-1] != ' ' && argsString[i-1] != '\t' {
			continue
		}
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(argsString[i:], p) {
				hits = append(hits, hit{pos: i, prefix: p})
				break
			}
		}
	}

	end := len(argsString)
	if len(hits) > 0 {
		end = hits[0].pos
	}
	args := NewArguments(argsString[:end])

	for i, h := range hits {
		end := len(argsString)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		args.Put(h.prefix, argsString[h.pos+len(h.prefix):end])
	}
	return args
}

// Put records another value for prefix.
func (a *Arguments) Put(prefix, value string) *Arguments {
	if a.values == nil {
		a.values = make(map[string][]string)
	}
	a.values[prefix] = append(a.values[prefix], value)
	return a
}

func (a *Arguments) Preamble() string {
	return a.preamble
}

// Value returns the last value given for prefix.
func (a *Arguments) Value(prefix string) (string, bool) {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for prefix, oldest first.
func (a *Arguments) AllValues(prefix string) []string {
	return append([]string(nil), a.values[prefix]...)
}

// Has reports whether prefix was given at least once.
func (a *Arguments) Has(prefix string) bool {
	return len(a.values[prefix]) > 0
}

// VerifyNoDuplicates fails when any of prefixes was given more than once.
func (a *Arguments) VerifyNoDuplicates(prefixes ...string) error {
	var dups []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateArgument, strings.Join(dups, " "))
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// ArgumentsParser
///////////////////////////////////////////////////////////////////////////////

// ArgumentsParser binds *Arguments into tagged structs.
//
// Bindings:
//   - preamble:'_' binds the trimmed preamble, found when it is not blank
//   - arg:'<prefix>' binds the value of a single-valued prefix. Giving the
//     prefix more than once is an error.
//   - args:'<prefix>' binds every value of prefix to a list field. A prefix
//     given once with an empty value binds an empty list.
type ArgumentsParser struct {
	*BaseMBParser[Arguments, struct{}]
}

var _ BindingManager[Arguments, struct{}] = (*argumentsBindingManager)(nil)

type argumentsBindingManager struct{}

func NewArgumentsParser() *ArgumentsParser {
	return &ArgumentsParser{
		BaseMBParser: NewBaseMBParser(
			&argumentsBindingManager{},
			BaseMBParserOpts{
				PCMOpts: ParseChainManagerOpts{
					ParseTagOpts: ParseTagOpts{
						BindingOpts: BindingOpts{
							AllowedBindingNames: []string{PreambleTagBinding, ArgTagBinding, ArgsTagBinding},
							IgnoredBindingNames: []string{JsonTagBinding},
						},
					},
				},
			},
		),
	}
}

func (ap *ArgumentsParser) Name() string {
	return ArgumentsParserName
}

func (m *argumentsBindingManager) NewCached(*Arguments) struct{} {
	return struct{}{}
}

func (m *argumentsBindingManager) BindingHandler(source *Arguments, binding Binding) BindingResult {
	switch binding.Name {
	case PreambleTagBinding:
		if strings.TrimSpace(source.preamble) == "" {
			return NotFound()
		}
		return Scalar(source.preamble)
	case ArgTagBinding:
		if err := source.VerifyNoDuplicates(binding.Identifier); err != nil {
			return BindingError(err)
		}
		v, ok := source.Value(binding.Identifier)
		if !ok {
			return NotFound()
		}
		return Scalar(v)
	case ArgsTagBinding:
		if !source.Has(binding.Identifier) {
			return NotFound()
		}
		values := source.AllValues(binding.Identifier)
		// A lone empty prefix clears the list
		if len(values) == 1 && strings.TrimSpace(values[0]) == "" {
			return List([]string{})
		}
		return List(values)
	default:
		return BindingError(fmt.Errorf("%w: %s", ErrUnallowedBindingName, binding.Name))
	}
}

func (m *argumentsBindingManager) BindingHandlerCached(source *Arguments, _ *CacheEntry[struct{}], binding Binding) BindingResult {
	return m.BindingHandler(source, binding)
}
