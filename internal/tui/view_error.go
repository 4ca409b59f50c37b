package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, max(20, a.width-4))).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(errMsg); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, max(20, a.width-4))).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func suggestionsFor(errMsg string) []string {
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "clipboard"):
		return []string{
			"No clipboard utility was found",
			"Install xclip, xsel or wl-clipboard, or press [s] to save instead",
		}
	case strings.Contains(errLower, "permission denied") || strings.Contains(errLower, "read-only"):
		return []string{
			"Check that the export directory is writable",
			"Set export_dir in ~/.config/promptopt/config.yaml or PROMPTOPT_EXPORT_DIR",
		}
	case strings.Contains(errLower, "invalid preset name"):
		return []string{
			"Use letters, digits, dots, dashes or underscores",
			"Names must start with a letter or digit",
		}
	case strings.Contains(errLower, "presets directory"):
		return []string{"Run `promptopt init` to create ~/.config/promptopt/presets"}
	}
	return nil
}
