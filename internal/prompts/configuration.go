package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration holds every rendering preference for one document. It is
// built fresh for each render and passed by value.
type Configuration struct {
	RawTask          string `yaml:"task,omitempty" toml:"task" json:"task"`
	Persona          string `yaml:"persona" toml:"persona" json:"persona"`
	Audience         string `yaml:"audience" toml:"audience" json:"audience"`
	Goal             string `yaml:"goal" toml:"goal" json:"goal"`
	Tone             string `yaml:"tone" toml:"tone" json:"tone"`
	FormatPreference string `yaml:"format" toml:"format" json:"format"`
	LengthPreference string `yaml:"length" toml:"length" json:"length"`
	ReadingLevel     string `yaml:"reading_level" toml:"reading_level" json:"reading_level"`
	Structure        string `yaml:"structure" toml:"structure" json:"structure"`
	ResponseLanguage string `yaml:"response_language" toml:"response_language" json:"response_language"`

	MustHave    []string `yaml:"must_have,omitempty" toml:"must_have" json:"must_have"`
	MustNotHave []string `yaml:"must_not_have,omitempty" toml:"must_not_have" json:"must_not_have"`

	AskClarifyingQuestions  bool `yaml:"ask_clarifying_questions" toml:"ask_clarifying_questions" json:"ask_clarifying_questions"`
	IncludeQualityChecklist bool `yaml:"quality_checklist" toml:"quality_checklist" json:"quality_checklist"`
	IncludeSelfEvaluation   bool `yaml:"self_evaluation" toml:"self_evaluation" json:"self_evaluation"`

	EnforceJSONOutput bool     `yaml:"enforce_json" toml:"enforce_json" json:"enforce_json"`
	JSONFields        []string `yaml:"json_fields,omitempty" toml:"json_fields" json:"json_fields"`

	FewShotBlock string    `yaml:"few_shot,omitempty" toml:"few_shot" json:"few_shot"`
	Variables    Variables `yaml:"variables,omitempty" toml:"variables" json:"variables"`
}

// Variable is one templating placeholder.
type Variable struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Variables keeps placeholders in insertion order so rendering is reproducible.
type Variables []Variable

// Set updates key in place, or appends it.
func (v *Variables) Set(key, value string) {
	for i := range *v {
		if (*v)[i].Key == key {
			(*v)[i].Value = value
			return
		}
	}
	*v = append(*v, Variable{Key: key, Value: value})
}

// String renders the variables in the form-text syntax accepted by ParseVariables.
func (v Variables) String() string {
	lines := make([]string, 0, len(v))
	for _, item := range v {
		lines = append(lines, item.Key+": "+item.Value)
	}
	return strings.Join(lines, "\n")
}

// UnmarshalText accepts the form-text syntax ("key: value" per line). TOML
// files carry variables this way.
func (v *Variables) UnmarshalText(text []byte) error {
	*v = ParseVariables(string(text))
	return nil
}

// UnmarshalJSON accepts an array of {"key","value"} objects or a block of form
// text. It shadows UnmarshalText, which encoding/json would otherwise apply to
// strings only.
func (v *Variables) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = ParseVariables(text)
		return nil
	}
	var items []Variable
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("variables: %w", err)
	}
	out := make(Variables, 0, len(items))
	for _, item := range items {
		out.Set(Sanitize(item.Key), item.Value)
	}
	*v = out
	return nil
}

// UnmarshalYAML accepts either an ordered mapping or a block of form text.
func (v *Variables) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = ParseVariables(node.Value)
		return nil
	case yaml.MappingNode:
		out := make(Variables, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("variable %q: line %d: expected a scalar value", key.Value, value.Line)
			}
			out.Set(Sanitize(key.Value), Sanitize(value.Value))
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("variables: line %d: expected a mapping or a string", node.Line)
	}
}

// MarshalYAML writes variables as an ordered mapping.
func (v Variables) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range v {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: item.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: item.Value},
		)
	}
	return node, nil
}

// ParseLines returns one trimmed item per non-blank line.
func ParseLines(text string) []string {
	return nonBlank(strings.Split(text, "\n"))
}

// ParseFields splits a comma-separated list, dropping blank entries.
func ParseFields(text string) []string {
	return CleanFields(strings.Split(text, ","))
}

// CleanFields trims each field name and drops the blank ones.
func CleanFields(fields []string) []string {
	return nonBlank(fields)
}

// ParseVariables reads "key: value" lines. Lines without a colon are ignored
// and a repeated key overwrites the earlier value in place.
func ParseVariables(text string) Variables {
	var vars Variables
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		vars.Set(Sanitize(key), Sanitize(value))
	}
	return vars
}
