package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type Config struct {
	// Defaults prefill the form and back `render` when no file is given.
	Defaults prompts.Configuration `yaml:"defaults"`

	Server    ServerConfig `yaml:"server"`
	Log       LogConfig    `yaml:"log"`
	ExportDir string       `yaml:"export_dir,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	File string `yaml:"file,omitempty"`
}

// DefaultPreferences mirrors the settings a new user starts from.
func DefaultPreferences() prompts.Configuration {
	return prompts.Configuration{
		Persona:          "a senior prompt engineer and domain expert",
		Goal:             "Generate",
		Audience:         "startup founder with basic technical literacy",
		Tone:             "Professional",
		FormatPreference: "Numbered steps",
		LengthPreference: "Medium",
		ReadingLevel:     "Undergrad",
		Structure:        "Introduction ▸ Key Points ▸ Examples ▸ Actionable Steps",
		ResponseLanguage: prompts.AutoLanguage,
		MustHave: []string{
			"Actionable steps",
			"Assumptions",
			"References section when sources are given",
		},
		MustNotHave: []string{
			"Apologies",
			"Speculation without evidence",
			"Chain-of-thought",
		},
		AskClarifyingQuestions:  true,
		IncludeQualityChecklist: true,
		IncludeSelfEvaluation:   false,
		EnforceJSONOutput:       false,
		JSONFields:              []string{"title", "summary", "steps"},
		Variables: prompts.Variables{
			{Key: "product", Value: "Acme Analytics"},
			{Key: "audience", Value: "growth PMs"},
		},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultPreferences(),
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Mode: "development",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptopt"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// PresetsDir is where named preference profiles live.
func PresetsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. It returns nil, nil when none exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault never returns a nil config.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv overlays PROMPTOPT_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("PROMPTOPT_ADDR")); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("PROMPTOPT_LOG_MODE")); v != "" {
		c.Log.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("PROMPTOPT_LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("PROMPTOPT_EXPORT_DIR")); v != "" {
		c.ExportDir = v
	}
}

// LoadConfiguration reads one preference record from a YAML or TOML file,
// chosen by extension. Fields absent from the file stay empty.
func LoadConfiguration(path string) (prompts.Configuration, error) {
	var cfg prompts.Configuration

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported configuration format %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
