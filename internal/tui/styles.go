package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorWhite     = lipgloss.Color("231")
	colorTrack     = lipgloss.Color("237")
)

// barCells is the width of the strength bar at 100%.
const barCells = 20

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtle).Width(12)
	helpStyle  = lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1)

	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			Width(36)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorTrack).
			Padding(0, 2).
			MarginLeft(1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(0, 1).
			MarginTop(1)

	trackStyle  = lipgloss.NewStyle().Foreground(colorTrack)
	thumbStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)

// strengthColors maps the backend's color tokens to terminal colors.
var strengthColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("196"),
	"orange": lipgloss.Color("208"),
	"green":  lipgloss.Color("40"),
}

// colorFor resolves a named or hex color token.
func colorFor(token string) lipgloss.Color {
	if c, ok := strengthColors[token]; ok {
		return c
	}
	return lipgloss.Color(token)
}
