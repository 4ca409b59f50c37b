package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		task     string
		expected []string
	}{
		{
			name: "very short without punctuation",
			task: "Hi",
			expected: []string{
				prompts.AdviceExpandedShort,
				prompts.AdviceClarified,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "optimize request with a full stop",
			task: "Please optimize this essay for clarity.",
			expected: []string{
				prompts.AdvicePreservedIntent,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "every rule fires",
			task: "Rewrite my intro",
			expected: []string{
				prompts.AdviceExpandedShort,
				prompts.AdvicePreservedIntent,
				prompts.AdviceClarified,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "keyword match ignores case",
			task: "Can you IMPROVE the onboarding email for new fintech users?",
			expected: []string{
				prompts.AdvicePreservedIntent,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "empty task",
			task: "",
			expected: []string{
				prompts.AdviceExpandedShort,
				prompts.AdviceClarified,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "question mark alone counts as punctuation",
			task: "What should a product spec for onboarding contain?",
			expected: []string{
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
		{
			name: "six words is not short",
			task: "write a spec for onboarding flow",
			expected: []string{
				prompts.AdviceClarified,
				prompts.AdviceJSONSchema,
				prompts.AdviceQuality,
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, prompts.Analyze(testCase.task))
		})
	}
}
