package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorFg     = lipgloss.Color("#cdd6f4")
	colorFgDim  = lipgloss.Color("#6c7086")
	colorAccent = lipgloss.Color("#89b4fa")
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorRed    = lipgloss.Color("#f38ba8")
	colorYellow = lipgloss.Color("#f9e2af")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			PaddingLeft(1).
			PaddingBottom(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorFgDim).
			PaddingLeft(1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFgDim).
			Padding(0, 1)

	segmentStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			PaddingLeft(3)

	segmentSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				PaddingLeft(1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	fieldSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				Underline(true)

	enabledStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	disabledStyle = lipgloss.NewStyle().Foreground(colorFgDim)
	modifiedStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed).PaddingLeft(1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorGreen).PaddingLeft(1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingTop(1)
)
