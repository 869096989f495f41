package report

import "github.com/charmbracelet/lipgloss"

// Chart and report colours.
var (
	ColorHeader    = lipgloss.Color("#7C3AED")
	ColorLabel     = lipgloss.Color("#9CA3AF")
	ColorValue     = lipgloss.Color("#FFFFFF")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorRoyalBlue = lipgloss.Color("#4169E1")
	ColorSkyBlue   = lipgloss.Color("#87CEEB")
	ColorOrange    = lipgloss.Color("#FFA500")
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	// SingleBarStyle colours the standalone nanofluid chart.
	SingleBarStyle = lipgloss.NewStyle().Foreground(ColorRoyalBlue)

	// NanofluidBarStyle and BaselineBarStyle colour the comparison chart.
	NanofluidBarStyle = lipgloss.NewStyle().Foreground(ColorSkyBlue)
	BaselineBarStyle  = lipgloss.NewStyle().Foreground(ColorOrange)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)
)
