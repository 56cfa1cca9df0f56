package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryOptions_TruncatesToThree(t *testing.T) {
	raw := `{"summaries": [
		{"title": "1", "description": "d", "content": "c1"},
		{"title": "2", "description": "d", "content": "c2"},
		{"title": "3", "description": "d", "content": "c3"},
		{"title": "4", "description": "d", "content": "c4"}
	]}`

	options, err := ParseSummaryOptions(raw)

	require.NoError(t, err)
	require.Len(t, options, MaxSummaryOptions)
	assert.Equal(t, "c3", options[2].Content)
}

func TestParseSummaryOptions_EmptyList(t *testing.T) {
	options, err := ParseSummaryOptions(`{"summaries": []}`)

	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestParseSummaryOptions_SchemaViolation(t *testing.T) {
	_, err := ParseSummaryOptions(`{"summaries": [{"title": 3, "description": "d", "content": "c"}]}`)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.NotEmpty(t, schemaErr.Errors)
	assert.Contains(t, schemaErr.Errors[0].Field, "title")
	assert.Contains(t, err.Error(), "malformed summary options")
}

func TestParseSummaryOptions_InvalidJSON(t *testing.T) {
	_, err := ParseSummaryOptions(`{"summaries": [`)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NotNil(t, schemaErr.Cause)
}
