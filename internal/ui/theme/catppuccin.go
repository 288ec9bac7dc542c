package theme

import "github.com/charmbracelet/lipgloss"

var (
	Crust    = lipgloss.Color("#11111b")
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")
	Green    = lipgloss.Color("#a6e3a1")

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 3)

	CardActive = Card.BorderForeground(Mauve)

	Title   = lipgloss.NewStyle().Foreground(Mauve).Bold(true)
	Heading = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Faint   = lipgloss.NewStyle().Foreground(Overlay0).Italic(true)
	Clock   = lipgloss.NewStyle().Foreground(Mauve).Bold(true)
	Checked = lipgloss.NewStyle().Foreground(Green)

	Button = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 2)

	Overlay = lipgloss.NewStyle().Background(Crust).Foreground(Text)
)
