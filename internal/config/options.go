package config

type OptionInfo struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// OptionSet is the catalog of accepted values for one enumerated field.
type OptionSet struct {
	Field   string       `json:"field"`
	Label   string       `json:"label"`
	Options []OptionInfo `json:"options"`
}

var Goals = OptionSet{
	Field: "goal",
	Label: "Primary goal",
	Options: []OptionInfo{
		{Value: "Explain", Description: "Teach a concept"},
		{Value: "Summarize", Description: "Condense source material"},
		{Value: "Generate", Description: "Create something new"},
		{Value: "Rewrite", Description: "Rework existing text"},
		{Value: "Plan", Description: "Lay out steps or a roadmap"},
		{Value: "Classify", Description: "Sort input into labels"},
		{Value: "Extract", Description: "Pull specific facts out"},
		{Value: "Code", Description: "Write source code"},
		{Value: "Debug", Description: "Find and fix a problem"},
		{Value: "Answer Q&A", Description: "Answer direct questions"},
	},
}

var Tones = OptionSet{
	Field: "tone",
	Label: "Tone",
	Options: []OptionInfo{
		{Value: "Neutral"},
		{Value: "Professional"},
		{Value: "Friendly"},
		{Value: "Concise"},
		{Value: "Academic"},
		{Value: "Persuasive"},
		{Value: "Playful"},
	},
}

var Formats = OptionSet{
	Field: "format",
	Label: "Output format",
	Options: []OptionInfo{
		{Value: "Paragraphs"},
		{Value: "Bulleted list"},
		{Value: "Numbered steps"},
		{Value: "Table"},
		{Value: "JSON"},
	},
}

var Lengths = OptionSet{
	Field: "length",
	Label: "Length preference",
	Options: []OptionInfo{
		{Value: "Concise"},
		{Value: "Medium"},
		{Value: "Detailed"},
	},
}

var ReadingLevels = OptionSet{
	Field: "reading_level",
	Label: "Reading level",
	Options: []OptionInfo{
		{Value: "General"},
		{Value: "Middle school"},
		{Value: "High school"},
		{Value: "Undergrad"},
		{Value: "Graduate"},
	},
}

var Languages = OptionSet{
	Field: "response_language",
	Label: "Response language",
	Options: []OptionInfo{
		{Value: "Auto", Description: "Match the language of the task"},
		{Value: "English"},
		{Value: "Spanish"},
		{Value: "French"},
		{Value: "German"},
		{Value: "Indonesian"},
		{Value: "Thai"},
		{Value: "Chinese"},
	},
}

// OptionSets lists every enumerated field in form order.
var OptionSets = []OptionSet{Goals, Tones, Formats, Lengths, ReadingLevels, Languages}

func (s OptionSet) Values() []string {
	values := make([]string, len(s.Options))
	for i, o := range s.Options {
		values[i] = o.Value
	}
	return values
}

// Index returns the position of value, or -1.
func (s OptionSet) Index(value string) int {
	for i, o := range s.Options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

func GetOptionSet(field string) *OptionSet {
	for _, s := range OptionSets {
		if s.Field == field {
			return &s
		}
	}
	return nil
}
