package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	form := []string{
		"  Tab / Shift+Tab  Next / previous field",
		"  Left / Right     Change an option",
		"  Space            Toggle a switch",
		"  Ctrl+G           Render the document",
		"  Ctrl+P, p        Presets",
		"  F1, ?            This help",
	}
	formTitle := styleSubtitle.Render("Form")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formTitle))
	b.WriteString("\n")
	formBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(form, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formBox))
	b.WriteString("\n\n")

	result := []string{
		"  Up / Down        Scroll",
		"  c                Copy to clipboard",
		"  s                Save optimized_prompt.txt",
		"  Esc              Back to the form",
	}
	resultTitle := styleSubtitle.Render("Result")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultTitle))
	b.WriteString("\n")
	resultBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(result, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back  [Ctrl+C] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
