package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "33"  // blue
	colorMuted  = "245" // gray
	colorText   = "252"
	colorTag    = "39"
)

var styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Tag      lipgloss.Style
	Box      lipgloss.Style
	Dot      lipgloss.Style
	DotOn    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).MarginBottom(1),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
	Item:     lipgloss.NewStyle().PaddingLeft(2),
	Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorTag)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorTag)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 2),
	Dot:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	DotOn: lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
}
