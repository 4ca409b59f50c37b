package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/export"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/logger"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type view int

const (
	viewForm view = iota
	viewResult
	viewPresets
	viewHelp
	viewError
)

func (v view) String() string {
	switch v {
	case viewForm:
		return "form"
	case viewResult:
		return "result"
	case viewPresets:
		return "presets"
	case viewHelp:
		return "help"
	case viewError:
		return "error"
	}
	return "unknown"
}

type App struct {
	width    int
	height   int
	view     view
	history  []view
	state    *state
	quitting bool
}

type Option func(*App)

func WithPresets(idx *presets.Index) Option {
	return func(a *App) { a.state.presetIndex = idx }
}

func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.state.log = l
		}
	}
}

// WithBuilder replaces the default builder, mostly to pin its clock.
func WithBuilder(b *prompts.Builder) Option {
	return func(a *App) {
		if b != nil {
			a.state.builder = b
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.state.clipboard = write }
}

// NewApp starts on the form, prefilled from cfg.Defaults.
func NewApp(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &App{
		view:  viewForm,
		state: newState(cfg),
	}
	a.state.clipboard = clipboard.WriteAll
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink, textarea.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.form.setWidth(msg.Width)
		a.state.viewport.Width = min(80, max(20, msg.Width-6))
		a.state.viewport.Height = max(5, msg.Height-16)
		return a, nil

	case copiedMsg:
		a.state.notice = "Copied to clipboard"
		a.state.log.Info("document copied", "estimate", a.state.tokens)
		return a, nil

	case savedMsg:
		a.state.notice = "Saved " + msg.path
		a.state.log.Info("document saved", "path", msg.path)
		return a, nil

	case presetSavedMsg:
		a.state.presetIndex.Add(msg.preset)
		a.state.presetNaming = false
		a.state.presetName.Reset()
		a.state.presetName.Blur()
		a.state.notice = "Saved preset " + msg.preset.Name
		a.state.log.Info("preset saved", "name", msg.preset.Name, "path", msg.preset.Path)
		return a, nil

	case errMsg:
		a.showError(msg.error)
		return a, nil
	}

	// Forward everything else (blink ticks, mouse) to the active widget.
	switch a.view {
	case viewForm:
		return a, a.state.form.update(msg)
	case viewResult:
		var cmd tea.Cmd
		a.state.viewport, cmd = a.state.viewport.Update(msg)
		return a, cmd
	case viewPresets:
		if a.state.presetNaming {
			var cmd tea.Cmd
			a.state.presetName, cmd = a.state.presetName.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewPresets:
		return a.handlePresetsKey(msg)
	case viewHelp, viewError:
		if key.Matches(msg, keys.Back) || key.Matches(msg, keys.Enter) {
			a.back()
		}
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := a.state.form
	fl := f.current()

	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.Render):
		a.render()
		return nil
	case key.Matches(msg, keys.Next):
		return f.move(1)
	case key.Matches(msg, keys.Prev):
		return f.move(-1)
	}

	// Printable keys belong to the focused text widget.
	if fl.editing() {
		if msg.String() == "f1" {
			a.open(viewHelp)
			return nil
		}
		if msg.String() == "ctrl+p" {
			a.open(viewPresets)
			return nil
		}
		return f.update(msg)
	}

	switch {
	case key.Matches(msg, keys.Help):
		a.open(viewHelp)
	case key.Matches(msg, keys.Presets):
		a.open(viewPresets)
	case key.Matches(msg, keys.Up):
		return f.move(-1)
	case key.Matches(msg, keys.Down):
		return f.move(1)
	case key.Matches(msg, keys.Left):
		fl.cycle(-1)
	case key.Matches(msg, keys.Right):
		fl.cycle(1)
	case key.Matches(msg, keys.Toggle):
		if fl.kind == kindToggle {
			fl.on = !fl.on
		} else {
			fl.cycle(1)
		}
	}
	return nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.reset(viewForm)
		a.state.notice = ""
		return nil
	case key.Matches(msg, keys.Copy):
		return a.copyDocument()
	case key.Matches(msg, keys.Save):
		return a.saveDocument()
	case key.Matches(msg, keys.Help):
		a.open(viewHelp)
		return nil
	case key.Matches(msg, keys.Presets):
		a.open(viewPresets)
		return nil
	}

	var cmd tea.Cmd
	a.state.viewport, cmd = a.state.viewport.Update(msg)
	return cmd
}

func (a *App) handlePresetsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.presetNaming {
		switch {
		case key.Matches(msg, keys.Back):
			s.presetNaming = false
			s.presetName.Reset()
			s.presetName.Blur()
			return nil
		case key.Matches(msg, keys.Enter):
			return a.savePreset(strings.TrimSpace(s.presetName.Value()))
		}
		var cmd tea.Cmd
		s.presetName, cmd = s.presetName.Update(msg)
		return cmd
	}

	count := s.presetIndex.Count()
	switch {
	case key.Matches(msg, keys.Back):
		a.back()
	case key.Matches(msg, keys.Up):
		if s.presetSelected > 0 {
			s.presetSelected--
		}
	case key.Matches(msg, keys.Down):
		if s.presetSelected < count-1 {
			s.presetSelected++
		}
	case key.Matches(msg, keys.Enter):
		if count == 0 {
			return nil
		}
		p := s.presetIndex.All()[s.presetSelected]
		s.form.load(p.Configuration)
		s.notice = "Loaded preset " + p.Name
		s.log.Info("preset loaded", "name", p.Name)
		a.reset(viewForm)
	case key.Matches(msg, keys.New):
		if s.presetIndex == nil {
			return nil
		}
		s.presetNaming = true
		return s.presetName.Focus()
	}
	return nil
}

// open switches to v, remembering where to return.
func (a *App) open(v view) {
	if a.view != v {
		a.history = append(a.history, a.view)
		a.state.log.Debug("view opened", "view", v.String(), "from", a.view.String())
	}
	a.view = v
}

func (a *App) back() {
	from := a.view
	if n := len(a.history); n > 0 {
		a.view = a.history[n-1]
		a.history = a.history[:n-1]
	} else {
		a.view = viewForm
	}
	a.state.log.Debug("view closed", "view", from.String(), "to", a.view.String())
}

// reset jumps to v and forgets the navigation history.
func (a *App) reset(v view) {
	a.history = a.history[:0]
	a.view = v
}

func (a *App) showError(err error) {
	a.state.err = err
	a.state.log.Error("tui action failed", "error", err)
	a.open(viewError)
}

// render builds the document from the current form and shows the result.
func (a *App) render() {
	s := a.state
	cfg := s.form.Configuration()

	s.document = s.builder.Build(cfg)
	s.advisories = prompts.Analyze(cfg.RawTask)
	s.tokens = prompts.EstimateTokens(s.document)
	s.notice = ""
	s.viewport.SetContent(s.document)
	s.viewport.GotoTop()

	s.log.Info("document rendered", "estimate", s.tokens, "advisories", len(s.advisories))
	a.reset(viewResult)
}

func (a *App) copyDocument() tea.Cmd {
	doc := a.state.document
	write := a.state.clipboard
	return func() tea.Msg {
		if err := write(doc); err != nil {
			return errMsg{fmt.Errorf("clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (a *App) saveDocument() tea.Cmd {
	doc := a.state.document
	dir := a.state.config.ExportDir
	return func() tea.Msg {
		path, err := export.Save(dir, doc)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{path: path}
	}
}

// savePreset writes the current form as a preset. The index is updated when
// presetSavedMsg arrives so it is only touched from Update.
func (a *App) savePreset(name string) tea.Cmd {
	if a.state.presetIndex == nil {
		return func() tea.Msg { return errMsg{errors.New("presets directory unavailable")} }
	}
	dir := a.state.presetIndex.Dir()
	p := &presets.Preset{Name: name, Configuration: a.state.form.Configuration()}
	return func() tea.Msg {
		if _, err := presets.Save(dir, p); err != nil {
			return errMsg{err}
		}
		return presetSavedMsg{preset: p}
	}
}

type copiedMsg struct{}
type savedMsg struct{ path string }
type presetSavedMsg struct{ preset *presets.Preset }
type errMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewResult:
		return a.renderResult()
	case viewPresets:
		return a.renderPresets()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderForm()
	}
}
