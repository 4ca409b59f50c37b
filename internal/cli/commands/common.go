package commands

import (
	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

// newBuilder is swapped in tests for a fixed clock.
var newBuilder = func() *prompts.Builder {
	return prompts.NewBuilder()
}

// LoadConfig reads the user config, falling back to defaults, and applies
// PROMPTOPT_* overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}
