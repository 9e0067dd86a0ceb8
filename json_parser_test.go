package pave

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonDaKappa/pave-fields/field"
	"github.com/SimonDaKappa/pave-fields/index"
	"github.com/SimonDaKappa/pave-fields/person"
	"github.com/SimonDaKappa/pave-fields/studentgroup"
)

type jsonDest struct {
	ID      uuid.UUID        `parse:"json:'id,omitempty'"`
	Index   index.Index      `parse:"json:'index'"`
	Name    person.Name      `parse:"json:'person.name'"`
	Email   *person.Email    `parse:"json:'person.email,omitempty'"`
	Gender  person.Gender    `parse:"json:'person.gender,omitempty' default:'F'"`
	Groups  studentgroup.Set `parse:"json:'groups,omitempty'"`
	Aliases []string         `parse:"json:'aliases,omitempty'"`
}

func TestJSONArgumentsParser(t *testing.T) {
	parser := NewJSONArgumentsParser()
	assert.Equal(t, JSONArgumentsParserName, parser.Name())

	t.Run("Parse_Success", func(t *testing.T) {
		id := uuid.New()
		src := JSONArguments(`{
			"id": "` + id.String() + `",
			"index": 4,
			"person": {"name": "  Alex Yeoh ", "email": "alex@example.com"},
			"groups": ["cs2103", "friends"],
			"aliases": ["al", "ay"]
		}`)

		var d jsonDest
		require.NoError(t, parser.Parse(&src, &d))
		assert.Equal(t, id, d.ID)
		assert.Equal(t, 4, d.Index.OneBased())
		assert.Equal(t, "Alex Yeoh", d.Name.String())
		require.NotNil(t, d.Email)
		assert.Equal(t, "alex@example.com", d.Email.String())
		assert.Equal(t, "F", d.Gender.String())
		assert.Equal(t, []string{"cs2103", "friends"}, d.Groups.Names())
		assert.Equal(t, []string{"al", "ay"}, d.Aliases)
	})

	t.Run("Parse_NullIsAbsent", func(t *testing.T) {
		src := JSONArguments(`{"index": "1", "person": {"name": "Bernice", "email": null}, "groups": null}`)

		var d jsonDest
		require.NoError(t, parser.Parse(&src, &d))
		assert.Nil(t, d.Email)
		assert.Equal(t, uuid.Nil, d.ID)
		assert.Equal(t, 0, d.Groups.Len())
	})

	t.Run("Parse_EmptyArray", func(t *testing.T) {
		src := JSONArguments(`{"index": 1, "person": {"name": "Bernice"}, "groups": []}`)

		var d jsonDest
		require.NoError(t, parser.Parse(&src, &d))
		assert.Equal(t, 0, d.Groups.Len())
	})

	t.Run("Parse_InvalidGroup", func(t *testing.T) {
		src := JSONArguments(`{"index": 1, "person": {"name": "Bernice"}, "groups": ["ok", "not ok"]}`)

		var d jsonDest
		err := parser.Parse(&src, &d)
		require.Error(t, err)
		msg, ok := field.Message(err)
		assert.True(t, ok)
		assert.Equal(t, studentgroup.MessageConstraints, msg)
	})

	t.Run("Parse_IndexNotPositive", func(t *testing.T) {
		src := JSONArguments(`{"index": 0, "person": {"name": "Bernice"}}`)

		var d jsonDest
		err := parser.Parse(&src, &d)
		require.Error(t, err)
		msg, _ := field.Message(err)
		assert.Equal(t, index.MessageInvalidIndex, msg)
	})

	t.Run("Parse_NumberLiteralKept", func(t *testing.T) {
		type numberDest struct {
			Index index.Index   `parse:"json:'index'"`
			Phone *person.Phone `parse:"json:'phone,omitempty'"`
		}

		tests := []struct {
			name    string
			payload string
			message string
		}{
			{"index_decimal", `{"index": 1.0}`, index.MessageInvalidIndex},
			{"index_exponent", `{"index": 1e2}`, index.MessageInvalidIndex},
			{"index_negative", `{"index": -1}`, index.MessageInvalidIndex},
			{"phone_exponent", `{"index": 1, "phone": 9.1e7}`, person.MessagePhone},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				src := JSONArguments(tt.payload)
				var d numberDest
				err := parser.Parse(&src, &d)
				require.Error(t, err)
				msg, ok := field.Message(err)
				assert.True(t, ok)
				assert.Equal(t, tt.message, msg)
			})
		}

		src := JSONArguments(`{"index": 12, "phone": 91234567}`)
		var d numberDest
		require.NoError(t, parser.Parse(&src, &d))
		assert.Equal(t, 12, d.Index.OneBased())
		require.NotNil(t, d.Phone)
		assert.Equal(t, "91234567", d.Phone.String())
	})

	t.Run("Parse_ObjectForScalar", func(t *testing.T) {
		src := JSONArguments(`{"index": 1, "person": {"name": {"first": "A"}}}`)

		var d jsonDest
		assert.Error(t, parser.Parse(&src, &d))
	})

	t.Run("Parse_MissingRequired", func(t *testing.T) {
		src := JSONArguments(`{"person": {"name": "Bernice"}}`)

		var d jsonDest
		assert.ErrorIs(t, parser.Parse(&src, &d), ErrMissingBinding)
	})

	t.Run("Parse_InvalidJSON", func(t *testing.T) {
		src := JSONArguments(`{"index": 1,`)

		var d jsonDest
		assert.ErrorIs(t, parser.Parse(&src, &d), ErrInvalidJSON)
	})

	t.Run("CacheReleasedAfterParse", func(t *testing.T) {
		src := JSONArguments(`{"index": 1, "person": {"name": "Bernice"}}`)

		var d jsonDest
		require.NoError(t, parser.Parse(&src, &d))
		assert.Equal(t, 0, parser.BCache.Len())
	})

	t.Run("SourceType", func(t *testing.T) {
		src := JSONArguments(`{}`)
		got, err := GetParser(&src)
		require.NoError(t, err)
		assert.Equal(t, JSONArgumentsParserName, got.Name())
	})
}
