// Package prompts renders a Configuration into the instruction document handed
// to a downstream model, and reports which heuristic enhancements apply to a
// raw task.
package prompts

import (
	_ "embed"
	"strings"
	"unicode/utf8"
)

//go:embed quality_checklist.md
var QualityChecklist string

//go:embed self_evaluation.md
var SelfEvaluation string

// StyleGuide is always listed among the constraints.
const StyleGuide = "Write clearly and concretely. Prefer active voice. Avoid hedging. " +
	"Cite facts only when sources are provided. Use numbered steps when helpful."

// DefaultTask replaces an empty raw task.
const DefaultTask = "Summarize the key points of this article for a busy executive."

// AutoLanguage lets the model answer in the language of the task.
const AutoLanguage = "Auto"

const (
	privateReasoningDirective = "Follow the style guide and constraints exactly. " +
		"Think privately; return only the final answer, not your chain-of-thought."
	clarifyDirective  = "ask targeted clarifying questions first."
	assumeDirective   = "state assumptions explicitly and proceed."
	variablesGuidance = "Use the following variables if referenced in the task. " +
		"If not provided, ask for them or make reasonable defaults."
	jsonIntro    = "The response must be valid JSON conforming to this schema:"
	jsonOnlyRule = "Return only JSON in the final answer (no prose outside the JSON object)."
)

// Sanitize trims text. An empty result means the field is not meaningfully set.
func Sanitize(text string) string {
	return strings.TrimSpace(text)
}

// EstimateTokens estimates token count (rough: 4 chars per token)
func EstimateTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := Sanitize(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if s := Sanitize(value); s != "" {
		return s
	}
	return fallback
}
