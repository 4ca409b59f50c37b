package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderPresets() string {
	var b strings.Builder
	s := a.state

	title := styleTitle.Render("Presets")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	width := min(70, max(30, a.width-4))

	if s.presetIndex == nil || s.presetIndex.Count() == 0 {
		dir := "~/.config/promptopt/presets/"
		if s.presetIndex != nil {
			dir = s.presetIndex.Dir()
		}
		empty := styleBox.Copy().
			Width(width).
			Foreground(colorMuted).
			Render("No presets yet.\n\nPress [n] to save the current form, or add YAML files to:\n" + dir)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		var lines []string
		for i, p := range s.presetIndex.All() {
			cursor := "  "
			if i == s.presetSelected {
				cursor = "> "
			}
			line := cursor + p.Name
			if i == s.presetSelected {
				line = styleLabelFocused.Render(line)
			}
			lines = append(lines, line)
			if p.Description != "" {
				lines = append(lines, styleSubtitle.Render("    "+truncate(p.Description, 60)))
			}
		}
		listBox := styleBox.Copy().
			Width(width).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	if s.presetNaming {
		label := styleSubtitle.Render("Save current form as:")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, label))
		b.WriteString("\n")
		inputBox := styleBox.Copy().
			Width(width).
			BorderForeground(colorPrimary).
			Render(s.presetName.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		b.WriteString("\n\n")
		status := styleStatusBar.Render("[Enter] Save  [Esc] Cancel")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
		return a.centerVertically(b.String())
	}

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(s.notice)))
		b.WriteString("\n")
	}

	status := styleStatusBar.Render(fmt.Sprintf("[Up/Down] Navigate  [Enter] Load  [n] Save current  [Esc] Back  (%d)", s.presetIndex.Count()))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
