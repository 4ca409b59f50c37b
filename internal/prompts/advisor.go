package prompts

import "strings"

// Advisories reported by Analyze.
const (
	AdviceExpandedShort   = "Expanded a very short prompt into a detailed task with constraints and audience."
	AdvicePreservedIntent = "Preserved intent while clarifying success criteria and output format."
	AdviceClarified       = "Added clear instructions and removed ambiguity about expected deliverables."
	AdviceJSONSchema      = "Added optional JSON schema enforcement when selected."
	AdviceQuality         = "Included a quality checklist and self-evaluation to raise answer quality."
)

// shortTaskWords is the word count below which a task counts as very short.
const shortTaskWords = 6

var rewriteKeywords = []string{"optimize", "improve", "rewrite"}

// Analyze explains which enhancements apply to rawTask. The two closing
// advisories are always present.
func Analyze(rawTask string) []string {
	var notes []string
	if len(strings.Fields(rawTask)) < shortTaskWords {
		notes = append(notes, AdviceExpandedShort)
	}
	lower := strings.ToLower(rawTask)
	for _, kw := range rewriteKeywords {
		if strings.Contains(lower, kw) {
			notes = append(notes, AdvicePreservedIntent)
			break
		}
	}
	if !strings.ContainsAny(rawTask, "?.") {
		notes = append(notes, AdviceClarified)
	}
	return append(notes, AdviceJSONSchema, AdviceQuality)
}
