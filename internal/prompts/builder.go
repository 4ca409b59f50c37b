package prompts

import (
	"strings"
	"time"
	"unicode"
)

// TimestampLayout is how the render time appears in the System block.
const TimestampLayout = "2006-01-02 15:04 UTC"

// Clock supplies the render time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Builder assembles instruction documents. It holds no state besides its
// clock and is safe for concurrent use.
type Builder struct {
	clock Clock
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// NewBuilder creates a Builder that reads the system clock unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{clock: systemClock{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// section is one block of the document. Blocks render in slice order and
// only when include holds.
type section struct {
	include bool
	render  func() []string
}

// Build renders cfg into the final document. It never fails: blank fields
// fall back to defaults.
func (b *Builder) Build(cfg Configuration) string {
	now := b.clock.Now().UTC().Format(TimestampLayout)

	task := orDefault(cfg.RawTask, DefaultTask)
	fewShot := Sanitize(cfg.FewShotBlock)
	variables := renderVariables(cfg.Variables)
	jsonFields := nonBlank(cfg.JSONFields)

	sections := []section{
		{true, func() []string { return systemBlock(cfg, now) }},
		{true, func() []string { return instructionsBlock(cfg) }},
		{true, func() []string { return constraintsBlock(cfg) }},
		{true, func() []string { return []string{"### Task (from user)", task} }},
		{true, func() []string { return []string{"### Audience", orDefault(cfg.Audience, "General")} }},
		{fewShot != "", func() []string { return []string{"### Few-shot Examples", fewShot} }},
		{len(variables) > 0, func() []string { return variablesBlock(variables) }},
		{cfg.EnforceJSONOutput && len(jsonFields) > 0, func() []string { return schemaBlock(jsonFields) }},
		{cfg.IncludeQualityChecklist, func() []string { return []string{QualityChecklist} }},
		{cfg.IncludeSelfEvaluation, func() []string { return []string{SelfEvaluation} }},
	}

	var lines []string
	for _, s := range sections {
		if s.include {
			lines = append(lines, s.render()...)
		}
	}
	return collapseBlankLines(strings.Join(lines, "\n"))
}

func systemBlock(cfg Configuration, now string) []string {
	return []string{
		"## System",
		"- Role: " + orDefault(cfg.Persona, "Expert Assistant"),
		"- Date: " + now,
	}
}

func instructionsBlock(cfg Configuration) []string {
	goal := "the task"
	if g := Sanitize(cfg.Goal); g != "" {
		goal = strings.ToLower(g)
	}

	lines := []string{
		"## Instructions",
		"You are " + orDefault(cfg.Persona, "an expert assistant") + ". Focus on " + goal + " for the specified audience.",
		privateReasoningDirective,
	}
	if tone := Sanitize(cfg.Tone); tone != "" {
		lines = append(lines, "Maintain a "+strings.ToLower(tone)+" tone appropriate for "+orDefault(cfg.Audience, "the user")+".")
	}
	if level := Sanitize(cfg.ReadingLevel); level != "" {
		lines = append(lines, "Target reading level: "+level+".")
	}
	if structure := Sanitize(cfg.Structure); structure != "" {
		lines = append(lines, "Structure: "+structure+".")
	}
	if lang := Sanitize(cfg.ResponseLanguage); lang != "" && lang != AutoLanguage {
		lines = append(lines, "Respond in "+lang+".")
	}
	return lines
}

func constraintsBlock(cfg Configuration) []string {
	var constraints []string
	if format := Sanitize(cfg.FormatPreference); format != "" {
		constraints = append(constraints, "Preferred output format: "+format+".")
	}
	if length := Sanitize(cfg.LengthPreference); length != "" {
		constraints = append(constraints, "Conciseness/length: "+length+".")
	}
	if must := nonBlank(cfg.MustHave); len(must) > 0 {
		constraints = append(constraints, "Must include: "+strings.Join(must, "; ")+".")
	}
	if mustNot := nonBlank(cfg.MustNotHave); len(mustNot) > 0 {
		constraints = append(constraints, "Do NOT include: "+strings.Join(mustNot, "; ")+".")
	}
	constraints = append(constraints, StyleGuide)

	missing := assumeDirective
	if cfg.AskClarifyingQuestions {
		missing = clarifyDirective
	}
	constraints = append(constraints, "If information is missing or ambiguous, "+missing)

	lines := []string{"### Constraints & Preferences"}
	for _, c := range constraints {
		lines = append(lines, "- "+c)
	}
	return lines
}

func renderVariables(vars Variables) []string {
	var items []string
	for _, v := range vars {
		if value := Sanitize(v.Value); value != "" {
			items = append(items, "  "+Sanitize(v.Key)+": "+value)
		}
	}
	return items
}

func variablesBlock(items []string) []string {
	lines := []string{"### Variables", variablesGuidance, "```yaml", "variables:"}
	lines = append(lines, items...)
	return append(lines, "```")
}

func schemaBlock(fields []string) []string {
	return []string{
		"### Output JSON Schema",
		jsonIntro,
		"```json",
		GenerateSchema(fields),
		"```",
		jsonOnlyRule,
	}
}

// collapseBlankLines trims trailing whitespace and drops empty lines, leaving
// a single trailing newline.
func collapseBlankLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n") + "\n"
}
