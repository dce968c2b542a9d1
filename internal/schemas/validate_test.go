package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["score", "notes"],
	"properties": {
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"notes": {"type": "array", "items": {"type": "string"}, "minItems": 1}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"score": 85, "notes": ["solid"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"score": 85}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Contains(t, ve.Errors[0].Message, "notes")
}

func TestValidateJSONString_OutOfRange(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"score": 150, "notes": ["x"]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "score", ve.Errors[0].Field)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"score":`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}
