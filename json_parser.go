package pave

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("source is not valid JSON")
)

// JSONArguments is a JSON document carrying command arguments.
type JSONArguments []byte

// JSONArgumentsParser binds *JSONArguments into tagged structs.
//
// The identifier of a `json` binding is a gjson path. Strings, numbers and
// booleans bind as their text, arrays bind as lists, and null or missing
// paths are not found. The document is decoded once per Parse call.
type JSONArgumentsParser struct {
	*BaseMBParser[JSONArguments, jsonDocument]
}

type jsonDocument struct {
	root gjson.Result
	err  error
}

var _ BindingManager[JSONArguments, jsonDocument] = (*jsonBindingManager)(nil)

type jsonBindingManager struct{}

func NewJSONArgumentsParser() *JSONArgumentsParser {
	return &JSONArgumentsParser{
		BaseMBParser: NewBaseMBParser(
			&jsonBindingManager{},
			BaseMBParserOpts{
				PCMOpts: ParseChainManagerOpts{
					ParseTagOpts: ParseTagOpts{
						BindingOpts: BindingOpts{
							AllowedBindingNames: []string{JsonTagBinding},
							IgnoredBindingNames: []string{PreambleTagBinding, ArgTagBinding, ArgsTagBinding},
						},
					},
				},
				UseCache: true,
			},
		),
	}
}

func (jp *JSONArgumentsParser) Name() string {
	return JSONArgumentsParserName
}

func (m *jsonBindingManager) NewCached(source *JSONArguments) jsonDocument {
	if !gjson.ValidBytes(*source) {
		return jsonDocument{err: ErrInvalidJSON}
	}
	return jsonDocument{root: gjson.ParseBytes(*source)}
}

func (m *jsonBindingManager) BindingHandler(source *JSONArguments, binding Binding) BindingResult {
	return lookupJSON(m.NewCached(source), binding)
}

func (m *jsonBindingManager) BindingHandlerCached(
	_ *JSONArguments,
	entry *CacheEntry[jsonDocument],
	binding Binding,
) BindingResult {
	return lookupJSON(entry.GetData(), binding)
}

func lookupJSON(doc jsonDocument, binding Binding) BindingResult {
	if doc.err != nil {
		return BindingError(doc.err)
	}
	if binding.Name != JsonTagBinding {
		return BindingError(fmt.Errorf("%w: %s", ErrUnallowedBindingName, binding.Name))
	}

	result := doc.root.Get(binding.Identifier)
	if !result.Exists() || result.Type == gjson.Null {
		return NotFound()
	}

	if result.IsArray() {
		elems := result.Array()
		values := make([]string, len(elems))
		for i, e := range elems {
			values[i] = jsonText(e)
		}
		return List(values)
	}
	if result.IsObject() {
		return BindingError(fmt.Errorf("json path %q holds an object, not a value", binding.Identifier))
	}
	return Scalar(jsonText(result))
}

// jsonText is the text a value binds as. Numbers keep their literal so that
// 1.0 or 9.1e7 reach the field as written.
func jsonText(result gjson.Result) string {
	if result.Type == gjson.Number {
		return result.Raw
	}
	return result.String()
}
