package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder
	s := a.state

	title := styleTitle.Render("Optimized prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	meta := styleSubtitle.Render(fmt.Sprintf("~%d tokens  |  %d%% scrolled", s.tokens, int(s.viewport.ScrollPercent()*100)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	docBox := styleBox.Copy().
		BorderForeground(colorPrimary).
		Render(s.viewport.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, docBox))
	b.WriteString("\n\n")

	var notes []string
	for _, note := range s.advisories {
		notes = append(notes, "- "+note)
	}
	notesBox := styleBox.Copy().
		Width(min(80, max(30, a.width-4))).
		BorderForeground(colorSecondary).
		Render("What changed\n" + strings.Join(notes, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notesBox))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(s.notice)))
		b.WriteString("\n")
	}

	status := styleStatusBar.Render("[↑↓] Scroll  [c] Copy  [s] Save  [p] Presets  [?] Help  [Esc] Back to form")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
