package pave

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Base Error types for tag parsing errors
var (
	ErrNoParseTagInField          = errors.New("no parse tag found in field")
	ErrUnallowedBindingName       = errors.New("binding name is not allowed")
	ErrEmptyBindingIdentifier     = errors.New("binding identifier cannot be empty")
	ErrInvalidBindingTagFormat    = errors.New("invalid binding tag format")
	ErrUnallowedBindingModifier   = errors.New("binding modifier is not allowed")
	ErrConflictingBindingModifier = errors.New("binding cannot be both required and omitempty")
	ErrDuplicateDefaultTag        = errors.New("default subtag given more than once")
	ErrSubTagNotFound             = errors.New("subtag not found")
	ErrUnterminatedSubTag         = errors.New("unterminated subtag value")
)

// This file contains the tag parser for the pave package. It interprets the
// `parse` tag on destination struct fields. Grammar:
//
// tag_parse:
//     parse:"<subtag>*"          // Space separated
// subtag:
//     default:'<value>' | <tag_binding>
// tag_binding:
//     <binding_name>:'<binding_identifier>[,<binding_modifier>]*'
// binding_modifier:
//     omitempty | required
//
// Bindings are tried in the order they are written. Quoted values may escape
// the quote with a backslash. A value without quotes ends at the next space.

// Corresponds to the `parse` tag in the struct field tags.
// Example: Name person.Name `parse:"arg:'n/' json:'name,omitempty'"`
type ParseTag struct {
	DefaultTag  DefaultTag
	BindingTags []BindingTag
	Ignored     int // bindings meant for other parsers
}

type ParseTagOpts struct {
	BindingOpts
}

// Corresponds to the `default` subtag in the `parse` tag.
// Example: default:'5'
type DefaultTag struct {
	Value   string
	Present bool
}

// Corresponds to a binding subtag in the `parse` tag.
// Example: arg:'p/,omitempty'
type BindingTag struct {
	Name       string
	Identifier string
	Modifiers  []string
}

// SubTagPair is one key:value subtag in written order.
type SubTagPair struct {
	Key   string
	Value string
}

// DecodeParseTag reads and decodes the `parse` tag of field.
func DecodeParseTag(field reflect.StructField, opts ParseTagOpts) (ParseTag, error) {
	tag, ok := field.Tag.Lookup(ParseTagPrefix)
	if !ok {
		return ParseTag{}, fmt.Errorf("%w: %s", ErrNoParseTagInField, field.Name)
	}

	parseTag, err := decodeParseTag(tag, opts)
	if err != nil {
		return ParseTag{}, fmt.Errorf("error parsing parse tag for field %s: %w", field.Name, err)
	}
	return parseTag, nil
}

// GetBindings decodes field's tag into its ordered bindings and default.
func GetBindings(field reflect.StructField, opts ParseTagOpts) ([]Binding, DefaultTag, error) {
	parseTag, err := DecodeParseTag(field, opts)
	if err != nil {
		return nil, DefaultTag{}, err
	}

	if len(parseTag.BindingTags) == 0 && parseTag.Ignored > 0 {
		return nil, DefaultTag{}, fmt.Errorf("%w: %s binds only from other sources", ErrNoStepBindings, field.Name)
	}

	bindings, err := makeBindings(parseTag)
	if err != nil {
		return nil, DefaultTag{}, fmt.Errorf("error making bindings for field %s: %w", field.Name, err)
	}
	return bindings, parseTag.DefaultTag, nil
}

func decodeParseTag(tag string, opts ParseTagOpts) (ParseTag, error) {
	pairs, err := SubTags(tag)
	if err != nil {
		return ParseTag{}, err
	}

	var parseTag ParseTag
	for _, pair := range pairs {
		if pair.Key == DefaultValueSubTagPrefix {
			if parseTag.DefaultTag.Present {
				return ParseTag{}, ErrDuplicateDefaultTag
			}
			parseTag.DefaultTag = DefaultTag{Value: pair.Value, Present: true}
			continue
		}

		if slices.Contains(opts.IgnoredBindingNames, pair.Key) {
			parseTag.Ignored++
			continue
		}

		bindingTag, err := decodeBindingTag(pair, opts)
		if err != nil {
			return ParseTag{}, err
		}
		parseTag.BindingTags = append(parseTag.BindingTags, bindingTag)
	}

	return parseTag, nil
}

func decodeBindingTag(pair SubTagPair, opts ParseTagOpts) (BindingTag, error) {
	if !slices.Contains(opts.AllowedBindingNames, pair.Key) {
		return BindingTag{}, fmt.Errorf("%w: %s", ErrUnallowedBindingName, pair.Key)
	}

	// Example: "p/,omitempty" -> "p/" as identifier and "omitempty" as modifier
	info := strings.Split(pair.Value, BindingInfoDelimiter)
	identifier := strings.TrimSpace(info[0])
	if identifier == "" {
		return BindingTag{}, fmt.Errorf("%w in tag: %s", ErrEmptyBindingIdentifier, pair.Key)
	}

	var modifiers []string
	for _, m := range info[1:] {
		m = strings.TrimSpace(m)
		switch m {
		case "":
			// Trailing delimiter is allowed
			continue
		case OmitEmptyBindingModifier, RequiredBindingModifier:
			modifiers = append(modifiers, m)
		default:
			return BindingTag{}, fmt.Errorf("%w: %s", ErrUnallowedBindingModifier, m)
		}
	}

	return BindingTag{
		Name:       pair.Key,
		Identifier: identifier,
		Modifiers:  modifiers,
	}, nil
}

func makeBindings(ptag ParseTag) ([]Binding, error) {
	bindings := make([]Binding, 0, len(ptag.BindingTags))

	for _, bindingTag := range ptag.BindingTags {
		binding, err := bindingTag.toBinding()
		if err != nil {
			return nil, fmt.Errorf("error creating binding from tag %s: %w", bindingTag.Name, err)
		}
		bindings = append(bindings, binding)
	}

	return bindings, nil
}

func (t BindingTag) toBinding() (Binding, error) {
	var modifiers BindingModifiers
	explicitRequired := false
	for _, modifier := range t.Modifiers {
		switch modifier {
		case OmitEmptyBindingModifier:
			modifiers.OmitEmpty = true
		case RequiredBindingModifier:
			explicitRequired = true
		}
	}
	if explicitRequired && modifiers.OmitEmpty {
		return Binding{}, ErrConflictingBindingModifier
	}
	modifiers.Required = !modifiers.OmitEmpty

	return Binding{
		Name:       t.Name,
		Identifier: t.Identifier,
		Modifiers:  modifiers,
	}, nil
}

// SubTags splits tag into its key:value subtags, preserving order.
func SubTags(tag string) ([]SubTagPair, error) {
	return SubTagsByDelimiter(tag, DefaultSubTagScopeDelimiter)
}

func SubTagsByDelimiter(tag string, delim byte) ([]SubTagPair, error) {
	var pairs []SubTagPair

	i := 0
	for {
		i = skipSpace(tag, i)
		if i >= len(tag) {
			return pairs, nil
		}

		colon := strings.Index(tag[i:], DefaultKeyValueTagDelimiter)
		if colon == -1 {
			return nil, fmt.Errorf("%w: %q has no value", ErrInvalidBindingTagFormat, tag[i:])
		}
		key := tag[i : i+colon]
		if key == "" || strings.ContainsAny(key, " \t") {
			return nil, fmt.Errorf("%w: bad key %q", ErrInvalidBindingTagFormat, key)
		}

		value, next, err := readSubTagValue(tag, i+colon+1, delim)
		if err != nil {
			return nil, fmt.Errorf("%w for %q", err, key)
		}
		pairs = append(pairs, SubTagPair{Key: key, Value: value})
		i = next
	}
}

// SubTag returns the value of the first subtag named key.
//
// Example: SubTag("default:'5' arg:'n/,omitempty'", "arg") returns "n/,omitempty"
func SubTag(tag string, key string) (string, error) {
	pairs, err := SubTags(tag)
	if err != nil {
		return "", err
	}
	for _, pair := range pairs {
		if pair.Key == key {
			return pair.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSubTagNotFound, key)
}

// readSubTagValue reads a value starting at start and returns it along with
// the index just past it.
func readSubTagValue(tag string, start int, delim byte) (string, int, error) {
	if start >= len(tag) || tag[start] != delim {
		end := start
		for end < len(tag) && tag[end] != ' ' && tag[end] != '\t' {
			end++
		}
		return tag[start:end], end, nil
	}

	var builder strings.Builder
	escaped := false
	for i := start + 1; i < len(tag); i++ {
		c := tag[i]
		switch {
		case escaped:
			builder.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == delim:
			return builder.String(), i + 1, nil
		default:
			builder.WriteByte(c)
		}
	}
	return "", len(tag), ErrUnterminatedSubTag
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
