package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderForm() string {
	var b strings.Builder

	title := styleTitle.Render("promptopt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Turn a rough task into a structured instruction document")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	formBox := styleBox.Copy().
		Width(min(76, max(30, a.width-4))).
		BorderForeground(colorPrimary).
		Render(a.state.form.view(a.height))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formBox))
	b.WriteString("\n\n")

	if a.state.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(a.state.notice)))
		b.WriteString("\n")
	}

	status := "[Tab] Next  [Ctrl+G] Render  [Ctrl+P] Presets  [F1] Help  [Esc] Quit"
	if !a.state.form.current().editing() {
		status = "[Tab/↑↓] Move  [←→] Change  [Space] Toggle  [Ctrl+G] Render  [p] Presets  [?] Help  [Esc] Quit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
