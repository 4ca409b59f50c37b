package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/logger"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type state struct {
	// Config
	config  *config.Config
	builder *prompts.Builder
	log     *logger.Logger

	// Form
	form *form

	// Result
	document   string
	advisories []string
	tokens     int
	viewport   viewport.Model
	notice     string

	// Presets
	presetIndex    *presets.Index
	presetSelected int
	presetNaming   bool
	presetName     textinput.Model

	// Error view
	err error

	clipboard func(string) error
}

func newState(cfg *config.Config) *state {
	name := textinput.New()
	name.Placeholder = "preset-name"
	name.CharLimit = 64
	name.Width = 40

	return &state{
		config:     cfg,
		builder:    prompts.NewBuilder(),
		log:        logger.Nop(),
		form:       newForm(cfg.Defaults),
		viewport:   viewport.New(70, 20),
		presetName: name,
	}
}
