package pave

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonDaKappa/pave-fields/person"
)

// Mock parser for testing
type MockParser struct {
	name       string
	sourceType reflect.Type
	parseFunc  func(source any, dest any) error
}

func (m *MockParser) Name() string {
	return m.name
}

func (m *MockParser) SourceType() reflect.Type {
	return m.sourceType
}

func (m *MockParser) Parse(source any, dest any) error {
	if m.parseFunc != nil {
		return m.parseFunc(source, dest)
	}
	return nil
}

// Mock validatable struct
type MockValidatable struct {
	Value     string
	ShouldErr bool
}

func (m *MockValidatable) Validate() error {
	if m.ShouldErr {
		return errors.New("validation error")
	}
	return nil
}

func newEmptyRegistry(t *testing.T, parsers ...Parser) *ParserRegistry {
	t.Helper()
	registry, err := NewParserRegistry(ParserRegistryOpts{
		Parsers:         parsers,
		ExcludeDefaults: true,
	})
	require.NoError(t, err)
	return registry
}

func TestParserRegistry(t *testing.T) {
	stringType := reflect.TypeOf("")

	t.Run("NewParserRegistry_WithDefaults", func(t *testing.T) {
		registry, err := NewParserRegistry(ParserRegistryOpts{})
		require.NoError(t, err)

		args := NewArguments("")
		p, err := registry.tryGetDefaultParser(args)
		require.NoError(t, err)
		assert.Equal(t, ArgumentsParserName, p.Name())
	})

	t.Run("NewParserRegistry_WithoutDefaults", func(t *testing.T) {
		registry := newEmptyRegistry(t)
		_, err := registry.tryGetDefaultParser(NewArguments(""))
		assert.ErrorIs(t, err, ErrNoParserRegistered)
	})

	t.Run("Register_Duplicate", func(t *testing.T) {
		registry := newEmptyRegistry(t, &MockParser{name: "test_parser", sourceType: stringType})
		err := registry.Register(&MockParser{name: "test_parser", sourceType: stringType})
		assert.ErrorIs(t, err, ErrParserAlreadyRegistered)

		_, err = NewParserRegistry(ParserRegistryOpts{Parsers: []Parser{NewArgumentsParser()}})
		assert.ErrorIs(t, err, ErrParserAlreadyRegistered, "clashes with the default")
	})

	t.Run("Parse_Success", func(t *testing.T) {
		registry := newEmptyRegistry(t, &MockParser{
			name:       "test_parser",
			sourceType: stringType,
			parseFunc: func(source any, dest any) error {
				dest.(*MockValidatable).Value = source.(string)
				return nil
			},
		})

		dest := &MockValidatable{}
		require.NoError(t, registry.Parse("parsed", dest, true))
		assert.Equal(t, "parsed", dest.Value)
	})

	t.Run("Parse_ValidationError_Invalidates", func(t *testing.T) {
		registry := newEmptyRegistry(t, &MockParser{
			name:       "test_parser",
			sourceType: stringType,
			parseFunc: func(source any, dest any) error {
				d := dest.(*MockValidatable)
				d.Value = "parsed"
				d.ShouldErr = true
				return nil
			},
		})

		dest := &MockValidatable{}
		err := registry.Parse("src", dest, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Equal(t, MockValidatable{}, *dest)
	})

	t.Run("Parse_ValidationSkipped", func(t *testing.T) {
		registry := newEmptyRegistry(t, &MockParser{
			name:       "test_parser",
			sourceType: stringType,
			parseFunc: func(source any, dest any) error {
				dest.(*MockValidatable).ShouldErr = true
				return nil
			},
		})

		dest := &MockValidatable{}
		assert.NoError(t, registry.Parse("src", dest, false))
		assert.True(t, dest.ShouldErr)
	})

	t.Run("Parse_ParseError_Invalidates", func(t *testing.T) {
		registry := newEmptyRegistry(t, &MockParser{
			name:       "test_parser",
			sourceType: stringType,
			parseFunc: func(source any, dest any) error {
				dest.(*MockValidatable).Value = "half done"
				return errors.New("parse error")
			},
		})

		dest := &MockValidatable{}
		err := registry.Parse("src", dest, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse with test_parser")
		assert.Empty(t, dest.Value)
	})

	t.Run("Parse_BadDest", func(t *testing.T) {
		registry := newEmptyRegistry(t)

		err := registry.Parse("src", nil, false)
		assert.ErrorContains(t, err, "dest cannot be nil")

		err = registry.Parse("src", MockValidatable{}, false)
		assert.ErrorContains(t, err, "non-nil pointer to a struct")

		err = registry.Parse("src", (*MockValidatable)(nil), false)
		assert.ErrorContains(t, err, "non-nil pointer to a struct")
	})

	t.Run("Parse_NoParserFound", func(t *testing.T) {
		registry := newEmptyRegistry(t)
		assert.ErrorIs(t, registry.Parse("src", &MockValidatable{}, false), ErrNoParserRegistered)
	})

	t.Run("MultipleParsers", func(t *testing.T) {
		registry := newEmptyRegistry(t,
			&MockParser{name: "upper", sourceType: stringType, parseFunc: func(_ any, dest any) error {
				dest.(*MockValidatable).Value = "UPPER"
				return nil
			}},
			&MockParser{name: "lower", sourceType: stringType, parseFunc: func(_ any, dest any) error {
				dest.(*MockValidatable).Value = "lower"
				return nil
			}},
		)

		dest := &MockValidatable{}
		assert.ErrorIs(t, registry.Parse("src", dest, false), ErrMultipleParsersAvailable)

		require.NoError(t, registry.WithParser("lower").Parse("src", dest, false))
		assert.Equal(t, "lower", dest.Value)

		err := registry.WithParser("missing").Parse("src", dest, false)
		assert.ErrorIs(t, err, ErrParserNotFound)
	})

	t.Run("getParserByName", func(t *testing.T) {
		mockParser := &MockParser{name: "test_parser", sourceType: stringType}
		registry := newEmptyRegistry(t, mockParser)

		parser, err := registry.getParserByName("src", "test_parser")
		require.NoError(t, err)
		assert.Same(t, mockParser, parser)

		_, err = registry.getParserByName(42, "test_parser")
		assert.ErrorIs(t, err, ErrParserNotFound)
	})
}

// envParser is a custom parser built on BaseMBParser, binding `env` tags from
// a map of environment style variables.
type envSource map[string]string

type envBindingManager struct{}

func (envBindingManager) NewCached(*envSource) struct{} { return struct{}{} }

func (envBindingManager) BindingHandler(source *envSource, binding Binding) BindingResult {
	v, ok := (*source)[binding.Identifier]
	if !ok {
		return NotFound()
	}
	return Scalar(v)
}

func (m envBindingManager) BindingHandlerCached(source *envSource, _ *CacheEntry[struct{}], binding Binding) BindingResult {
	return m.BindingHandler(source, binding)
}

type envParser struct {
	*BaseMBParser[envSource, struct{}]
}

func (envParser) Name() string { return "env-parser" }

func newEnvParser() envParser {
	return envParser{NewBaseMBParser[envSource, struct{}](envBindingManager{}, BaseMBParserOpts{
		PCMOpts: ParseChainManagerOpts{ParseTagOpts: ParseTagOpts{
			BindingOpts: BindingOpts{AllowedBindingNames: []string{"env"}},
		}},
	})}
}

type contactConfig struct {
	Owner person.Name  `parse:"env:'OWNER'"`
	Phone person.Phone `parse:"env:'PHONE,omitempty' default:'999'"`
	Debug bool         `parse:"env:'DEBUG,omitempty'"`
}

func (c *contactConfig) Validate() error {
	if c.Owner.String() == "root" {
		return errors.New("owner cannot be root")
	}
	return nil
}

func TestCustomParser(t *testing.T) {
	registry := newEmptyRegistry(t, newEnvParser())

	t.Run("Parse_Success", func(t *testing.T) {
		src := envSource{"OWNER": "Alex Yeoh", "DEBUG": "true"}
		var cfg contactConfig
		require.NoError(t, registry.Parse(&src, &cfg, true))
		assert.Equal(t, "Alex Yeoh", cfg.Owner.String())
		assert.Equal(t, "999", cfg.Phone.String())
		assert.True(t, cfg.Debug)
	})

	t.Run("Parse_MissingRequired", func(t *testing.T) {
		src := envSource{"PHONE": "911"}
		var cfg contactConfig
		assert.ErrorIs(t, registry.Parse(&src, &cfg, true), ErrMissingBinding)
		assert.True(t, cfg.Phone.IsZero(), "zeroed on failure")
	})

	t.Run("Parse_ValidateRejects", func(t *testing.T) {
		src := envSource{"OWNER": "root", "PHONE": "911"}
		var cfg contactConfig
		assert.ErrorIs(t, registry.Parse(&src, &cfg, true), ErrValidationFailed)
		assert.True(t, cfg.Owner.IsZero())
	})

	t.Run("PointerSourcePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBaseMBParser[*envSource, struct{}](nilEnvManager{}, BaseMBParserOpts{})
		})
	})
}

type nilEnvManager struct{}

func (nilEnvManager) NewCached(**envSource) struct{} { return struct{}{} }
func (nilEnvManager) BindingHandler(**envSource, Binding) BindingResult {
	return NotFound()
}
func (nilEnvManager) BindingHandlerCached(**envSource, *CacheEntry[struct{}], Binding) BindingResult {
	return NotFound()
}

func TestPackageRegistry(t *testing.T) {
	args := Tokenize("1 n/Alex", "n/")
	p, err := GetParser(args)
	require.NoError(t, err)
	assert.Equal(t, ArgumentsParserName, p.Name())

	p, err = GetParserByName(args, ArgumentsParserName)
	require.NoError(t, err)
	assert.Equal(t, ArgumentsParserName, p.Name())

	var d struct {
		Name person.Name `parse:"arg:'n/'"`
	}
	require.NoError(t, Parse(args, &d, true))
	assert.Equal(t, "Alex", d.Name.String())

	require.NoError(t, WithParser(ArgumentsParserName).Parse(args, &d, false))
	require.NoError(t, Invalidate(&d))
	assert.True(t, d.Name.IsZero())
}
