package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindArea
	kindChoice
	kindToggle
)

// field is one editable row of the form. Only the widget matching kind is used.
type field struct {
	key   string
	label string
	kind  fieldKind

	input   textinput.Model
	area    textarea.Model
	set     config.OptionSet
	options []string
	choice  int
	on      bool
}

func newTextField(key, label, placeholder string) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 0
	in.Width = 60
	in.Prompt = ""
	return &field{key: key, label: label, kind: kindText, input: in}
}

func newAreaField(key, label, placeholder string) *field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.SetWidth(60)
	ta.SetHeight(5)
	return &field{key: key, label: label, kind: kindArea, area: ta}
}

func newChoiceField(key string) *field {
	set := config.GetOptionSet(key)
	if set == nil {
		return &field{key: key, label: key, kind: kindChoice}
	}
	return &field{key: key, label: set.Label, kind: kindChoice, set: *set, options: set.Values()}
}

func newToggleField(key, label string) *field {
	return &field{key: key, label: label, kind: kindToggle}
}

func (f *field) value() string {
	switch f.kind {
	case kindText:
		return f.input.Value()
	case kindArea:
		return f.area.Value()
	case kindChoice:
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.choice]
	}
	return ""
}

// setValue loads v into the widget. A choice value outside the catalog is
// appended so it survives a round trip.
func (f *field) setValue(v string) {
	switch f.kind {
	case kindText:
		f.input.SetValue(v)
	case kindArea:
		f.area.SetValue(v)
	case kindChoice:
		if i := f.set.Index(v); i >= 0 {
			f.choice = i
			return
		}
		if v == "" {
			f.choice = 0
			return
		}
		for i := len(f.set.Options); i < len(f.options); i++ {
			if f.options[i] == v {
				f.choice = i
				return
			}
		}
		f.options = append(f.options, v)
		f.choice = len(f.options) - 1
	}
}

func (f *field) cycle(delta int) {
	if f.kind != kindChoice || len(f.options) == 0 {
		return
	}
	f.choice = (f.choice + delta + len(f.options)) % len(f.options)
}

// editing reports whether key presses should go to a text widget.
func (f *field) editing() bool {
	return f.kind == kindText || f.kind == kindArea
}

func (f *field) focus() tea.Cmd {
	switch f.kind {
	case kindText:
		return f.input.Focus()
	case kindArea:
		return f.area.Focus()
	}
	return nil
}

func (f *field) blur() {
	switch f.kind {
	case kindText:
		f.input.Blur()
	case kindArea:
		f.area.Blur()
	}
}

type form struct {
	fields []*field
	cursor int
}

func newForm(cfg prompts.Configuration) *form {
	f := &form{
		fields: []*field{
			newAreaField("task", "Task", "Describe what you need..."),
			newTextField("persona", "Persona / role", "e.g. a senior data analyst"),
			newTextField("audience", "Audience", "Who will read the answer?"),
			newChoiceField("goal"),
			newChoiceField("tone"),
			newChoiceField("format"),
			newChoiceField("length"),
			newChoiceField("reading_level"),
			newTextField("structure", "Structure", "e.g. Introduction ▸ Key Points ▸ Examples"),
			newChoiceField("response_language"),
			newAreaField("must_have", "Must include (one per line)", ""),
			newAreaField("must_not_have", "Must avoid (one per line)", ""),
			newToggleField("ask_clarifying_questions", "Ask clarifying questions"),
			newToggleField("quality_checklist", "Quality checklist"),
			newToggleField("self_evaluation", "Self-evaluation"),
			newToggleField("enforce_json", "Enforce JSON output"),
			newTextField("json_fields", "JSON fields (comma separated)", "title, summary, steps"),
			newAreaField("few_shot", "Few-shot examples", "USER -> ...\nASSISTANT -> ..."),
			newAreaField("variables", "Variables (key: value per line)", "product: Acme"),
		},
	}
	f.load(cfg)
	f.fields[0].focus()
	return f
}

func (f *form) field(key string) *field {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl
		}
	}
	return nil
}

func (f *form) current() *field {
	return f.fields[f.cursor]
}

func (f *form) move(delta int) tea.Cmd {
	f.current().blur()
	f.cursor = (f.cursor + delta + len(f.fields)) % len(f.fields)
	return f.current().focus()
}

func (f *form) load(cfg prompts.Configuration) {
	f.field("task").setValue(cfg.RawTask)
	f.field("persona").setValue(cfg.Persona)
	f.field("audience").setValue(cfg.Audience)
	f.field("goal").setValue(cfg.Goal)
	f.field("tone").setValue(cfg.Tone)
	f.field("format").setValue(cfg.FormatPreference)
	f.field("length").setValue(cfg.LengthPreference)
	f.field("reading_level").setValue(cfg.ReadingLevel)
	f.field("structure").setValue(cfg.Structure)
	f.field("response_language").setValue(cfg.ResponseLanguage)
	f.field("must_have").setValue(strings.Join(cfg.MustHave, "\n"))
	f.field("must_not_have").setValue(strings.Join(cfg.MustNotHave, "\n"))
	f.field("ask_clarifying_questions").on = cfg.AskClarifyingQuestions
	f.field("quality_checklist").on = cfg.IncludeQualityChecklist
	f.field("self_evaluation").on = cfg.IncludeSelfEvaluation
	f.field("enforce_json").on = cfg.EnforceJSONOutput
	f.field("json_fields").setValue(strings.Join(cfg.JSONFields, ", "))
	f.field("few_shot").setValue(cfg.FewShotBlock)
	f.field("variables").setValue(cfg.Variables.String())
}

// Configuration reads the form into a fresh record.
func (f *form) Configuration() prompts.Configuration {
	return prompts.Configuration{
		RawTask:                 f.field("task").value(),
		Persona:                 f.field("persona").value(),
		Audience:                f.field("audience").value(),
		Goal:                    f.field("goal").value(),
		Tone:                    f.field("tone").value(),
		FormatPreference:        f.field("format").value(),
		LengthPreference:        f.field("length").value(),
		ReadingLevel:            f.field("reading_level").value(),
		Structure:               f.field("structure").value(),
		ResponseLanguage:        f.field("response_language").value(),
		MustHave:                prompts.ParseLines(f.field("must_have").value()),
		MustNotHave:             prompts.ParseLines(f.field("must_not_have").value()),
		AskClarifyingQuestions:  f.field("ask_clarifying_questions").on,
		IncludeQualityChecklist: f.field("quality_checklist").on,
		IncludeSelfEvaluation:   f.field("self_evaluation").on,
		EnforceJSONOutput:       f.field("enforce_json").on,
		JSONFields:              prompts.ParseFields(f.field("json_fields").value()),
		FewShotBlock:            f.field("few_shot").value(),
		Variables:               prompts.ParseVariables(f.field("variables").value()),
	}
}

func (f *form) setWidth(width int) {
	w := min(70, width-8)
	if w < 20 {
		w = 20
	}
	for _, fl := range f.fields {
		fl.input.Width = w
		if fl.kind == kindArea {
			fl.area.SetWidth(w)
		}
	}
}

// update forwards msg to the focused text widget.
func (f *form) update(msg tea.Msg) tea.Cmd {
	fl := f.current()
	var cmd tea.Cmd
	switch fl.kind {
	case kindText:
		fl.input, cmd = fl.input.Update(msg)
	case kindArea:
		fl.area, cmd = fl.area.Update(msg)
	}
	return cmd
}

func (f *form) view(height int) string {
	// Each collapsed row takes about two lines; the focused area takes more.
	visible := (height - 10) / 2
	if visible < 3 {
		visible = 3
	}
	start := f.cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := min(len(f.fields), start+visible)
	if end-start < visible {
		start = max(0, end-visible)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, f.renderField(f.fields[i], i == f.cursor))
	}
	if start > 0 {
		rows = append([]string{styleSubtitle.Render(fmt.Sprintf("  ↑ %d more", start))}, rows...)
	}
	if end < len(f.fields) {
		rows = append(rows, styleSubtitle.Render(fmt.Sprintf("  ↓ %d more", len(f.fields)-end)))
	}
	return strings.Join(rows, "\n")
}

func (f *form) renderField(fl *field, focused bool) string {
	label := styleLabel.Render(fl.label)
	marker := "  "
	if focused {
		label = styleLabelFocused.Render(fl.label)
		marker = styleLabelFocused.Render("> ")
	}

	var widget string
	switch fl.kind {
	case kindText:
		widget = fl.input.View()
	case kindArea:
		if focused {
			widget = fl.area.View()
		} else {
			widget = styleSubtitle.Render(areaPreview(fl.area.Value()))
		}
	case kindChoice:
		widget = fmt.Sprintf("◀ %s ▶", fl.value())
	case kindToggle:
		if fl.on {
			widget = styleToggleOn.Render("[x] on")
		} else {
			widget = styleSubtitle.Render("[ ] off")
		}
	}

	return marker + label + "\n" + lipgloss.NewStyle().PaddingLeft(4).Render(widget)
}

// areaPreview collapses a multi-line value to its first line.
func areaPreview(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "(empty)"
	}
	lines := strings.Split(v, "\n")
	first := truncate(lines[0], 56)
	if len(lines) > 1 {
		return fmt.Sprintf("%s  (+%d lines)", first, len(lines)-1)
	}
	return first
}
