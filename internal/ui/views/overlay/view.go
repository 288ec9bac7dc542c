package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"mindspace/internal/ui/theme"
)

// Render draws the full-screen focus overlay. clock is empty when no
// countdown has been started.
func Render(width, height int, clock string) string {
	lines := []string{theme.Title.Render("D E E P   F O C U S")}
	if clock != "" {
		lines = append(lines, "", theme.Muted.Render(clock))
	}
	lines = append(lines, "", "", theme.Button.Render("esc  leave focus mode"))
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(theme.Crust))
}
