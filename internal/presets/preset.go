package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

// Preset is a named preference profile stored as one YAML file.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Configuration prompts.Configuration `yaml:",inline"`

	Path string `yaml:"-"` // Full path to the preset file
}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// LoadFile reads one preset. The file stem is used when no name is set.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", filepath.Base(path), err)
	}

	if strings.TrimSpace(p.Name) == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	p.Path = path

	return &p, nil
}

// Save writes the preset to dir/<name>.yaml.
func Save(dir string, p *Preset) (string, error) {
	name := strings.TrimSpace(p.Name)
	if !validName.MatchString(name) {
		return "", fmt.Errorf("invalid preset name %q", p.Name)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	p.Path = path
	return path, nil
}
