package prompts_test

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", prompts.Sanitize(""))
	assert.Equal(t, "", prompts.Sanitize(" \t\n "))
	assert.Equal(t, "a b", prompts.Sanitize("  a b \n"))
}

func TestParseLines(t *testing.T) {
	t.Parallel()

	got := prompts.ParseLines("Actionable steps\n\n  Assumptions  \n   \nReferences section")
	assert.Equal(t, []string{"Actionable steps", "Assumptions", "References section"}, got)
	assert.Empty(t, prompts.ParseLines("\n \n"))
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"title", "summary", "steps"}, prompts.ParseFields("title, summary,, steps ,"))
	assert.Empty(t, prompts.ParseFields(" , "))
}

func TestCleanFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"title", "steps"}, prompts.CleanFields([]string{"", " title ", "\t", "steps"}))
	assert.Empty(t, prompts.CleanFields(nil))
}

func TestParseVariables(t *testing.T) {
	t.Parallel()

	vars := prompts.ParseVariables("product: Acme Analytics\nno colon here\naudience: growth PMs\nurl: https://x.io\nproduct: Acme 2")

	require.Equal(t, prompts.Variables{
		{Key: "product", Value: "Acme 2"},
		{Key: "audience", Value: "growth PMs"},
		{Key: "url", Value: "https://x.io"},
	}, vars)
	assert.Equal(t, "product: Acme 2\naudience: growth PMs\nurl: https://x.io", vars.String())

	vars.Set("audience", "founders")
	vars.Set("region", "EU")
	assert.Equal(t, prompts.Variable{Key: "audience", Value: "founders"}, vars[1])
	assert.Equal(t, prompts.Variable{Key: "region", Value: "EU"}, vars[3])
}

func TestVariables_YAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	source := "persona: a tutor\nvariables:\n  zeta: last letter\n  alpha: first letter\n  mid: ''\n"

	var cfg prompts.Configuration
	require.NoError(t, yaml.Unmarshal([]byte(source), &cfg))

	require.Equal(t, prompts.Variables{
		{Key: "zeta", Value: "last letter"},
		{Key: "alpha", Value: "first letter"},
		{Key: "mid", Value: ""},
	}, cfg.Variables)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var again prompts.Configuration
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, cfg.Variables, again.Variables)
}

func TestVariables_YAMLAcceptsFormText(t *testing.T) {
	t.Parallel()

	source := "variables: |\n  product: Acme\n  audience: PMs\n"

	var cfg prompts.Configuration
	require.NoError(t, yaml.Unmarshal([]byte(source), &cfg))
	assert.Equal(t, prompts.Variables{{Key: "product", Value: "Acme"}, {Key: "audience", Value: "PMs"}}, cfg.Variables)
}

func TestVariables_YAMLRejectsNestedValues(t *testing.T) {
	t.Parallel()

	source := "variables:\n  product:\n    name: Acme\n"

	var cfg prompts.Configuration
	require.Error(t, yaml.Unmarshal([]byte(source), &cfg))
}

func TestVariables_TOMLUsesFormText(t *testing.T) {
	t.Parallel()

	source := "tone = \"Playful\"\nmust_have = [\"a\", \"b\"]\nvariables = \"\"\"\nproduct: Acme\naudience: PMs\n\"\"\"\n"

	var cfg prompts.Configuration
	require.NoError(t, toml.Unmarshal([]byte(source), &cfg))

	assert.Equal(t, "Playful", cfg.Tone)
	assert.Equal(t, []string{"a", "b"}, cfg.MustHave)
	assert.Equal(t, prompts.Variables{{Key: "product", Value: "Acme"}, {Key: "audience", Value: "PMs"}}, cfg.Variables)
}

func TestVariables_JSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		body     string
		expected prompts.Variables
	}{
		{
			name:     "array of pairs",
			body:     `{"variables":[{"key":"b","value":"2"},{"key":"a","value":"1"}]}`,
			expected: prompts.Variables{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
		},
		{
			name:     "form text",
			body:     `{"variables":"b: 2\na: 1"}`,
			expected: prompts.Variables{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
		},
		{
			name:     "null",
			body:     `{"variables":null}`,
			expected: nil,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var cfg prompts.Configuration
			require.NoError(t, json.Unmarshal([]byte(testCase.body), &cfg))
			assert.Equal(t, testCase.expected, cfg.Variables)
		})
	}
}
