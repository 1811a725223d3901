package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBoard   = lipgloss.Color("#2e7d32")
	colorMoney   = lipgloss.Color("#8BC34A")
	colorWarn    = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("240")
	colorCurrent = lipgloss.Color("#2196F3")
)

// Styles collects every lipgloss style the views use so pages never
// construct styles inline.
type Styles struct {
	Banner     lipgloss.Style
	Square     lipgloss.Style
	SquareOwn  lipgloss.Style
	SquareHere lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Auction    lipgloss.Style
	Feed       lipgloss.Style
	Help       lipgloss.Style
	Err        lipgloss.Style
	Money      lipgloss.Style
}

func DefaultStyles() Styles {
	square := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
	return Styles{
		Banner:     lipgloss.NewStyle().Bold(true).Foreground(colorBoard),
		Square:     square,
		SquareOwn:  square.Foreground(colorMoney),
		SquareHere: square.Foreground(colorCurrent).Bold(true),
		Panel:      panel,
		PanelTitle: lipgloss.NewStyle().Bold(true),
		Auction:    panel.BorderForeground(colorWarn),
		Feed:       lipgloss.NewStyle().Foreground(colorMuted),
		Help:       lipgloss.NewStyle().Foreground(colorMuted),
		Err:        lipgloss.NewStyle().Foreground(colorDanger),
		Money:      lipgloss.NewStyle().Foreground(colorMoney),
	}
}
