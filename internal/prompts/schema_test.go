package prompts_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

func TestGenerateSchema_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := prompts.GenerateSchema([]string{"a", "b"})

	var decoded struct {
		Schema               string                       `json:"$schema"`
		Type                 string                       `json:"type"`
		Properties           map[string]map[string]string `json:"properties"`
		Required             []string                     `json:"required"`
		AdditionalProperties *bool                        `json:"additionalProperties"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))

	assert.Equal(t, prompts.SchemaDraft, decoded.Schema)
	assert.Equal(t, "object", decoded.Type)
	assert.Equal(t, []string{"a", "b"}, decoded.Required)
	require.NotNil(t, decoded.AdditionalProperties)
	assert.False(t, *decoded.AdditionalProperties)
	assert.Equal(t, map[string]map[string]string{
		"a": {"type": "string"},
		"b": {"type": "string"},
	}, decoded.Properties)
}

func TestGenerateSchema_CanonicalLayout(t *testing.T) {
	t.Parallel()

	expected := `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title": {
      "type": "string"
    },
    "summary": {
      "type": "string"
    }
  },
  "required": [
    "title",
    "summary"
  ],
  "additionalProperties": false
}`

	require.Equal(t, expected, prompts.GenerateSchema([]string{"title", "summary"}))
}

func TestGenerateSchema_PreservesFieldOrder(t *testing.T) {
	t.Parallel()

	raw := prompts.GenerateSchema([]string{"zeta", "alpha", "mid"})

	zeta := strings.Index(raw, `"zeta": {`)
	alpha := strings.Index(raw, `"alpha": {`)
	mid := strings.Index(raw, `"mid": {`)
	require.True(t, zeta < alpha && alpha < mid, "properties reordered:\n%s", raw)
}

func TestGenerateSchema_EdgeCases(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		fields   []string
		contains []string
	}{
		{
			name:     "empty list",
			fields:   nil,
			contains: []string{`"properties": {}`, `"required": []`},
		},
		{
			name:     "duplicate names keep one property",
			fields:   []string{"a", "a"},
			contains: []string{"\"required\": [\n    \"a\",\n    \"a\"\n  ]"},
		},
		{
			name:     "html characters are not escaped",
			fields:   []string{"<b>&"},
			contains: []string{`"<b>&": {`},
		},
		{
			name:     "non-ascii names are escaped",
			fields:   []string{"título", "😀"},
			contains: []string{`"t\u00edtulo": {`, `"\ud83d\ude00": {`},
		},
		{
			name:     "quotes and control characters are escaped",
			fields:   []string{"a\"b\\c\n\x01"},
			contains: []string{`"a\"b\\c\n\u0001": {`},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			raw := prompts.GenerateSchema(testCase.fields)
			require.True(t, json.Valid([]byte(raw)), raw)
			for _, want := range testCase.contains {
				assert.Contains(t, raw, want)
			}
		})
	}
}

func TestGenerateSchema_DecodesToOriginalNames(t *testing.T) {
	t.Parallel()

	fields := []string{"título", "<b>&", "tab\there", "😀"}
	raw := prompts.GenerateSchema(fields)

	for _, c := range raw {
		require.Less(t, c, rune(0x80), "non-ascii output:\n%s", raw)
	}

	var decoded struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, fields, decoded.Required)
}

func TestGenerateSchema_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	fields := []string{"a", "b"}
	first := prompts.GenerateSchema(fields)
	fields[0] = "changed"

	assert.NotContains(t, first, "changed")
}
