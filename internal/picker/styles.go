package picker

import "github.com/charmbracelet/lipgloss"

var (
	colorFg     = lipgloss.Color("#cdd6f4")
	colorFgDim  = lipgloss.Color("#6c7086")
	colorAccent = lipgloss.Color("#89b4fa")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	activeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)
)

// Result tells the host what a picker did with a message.
type Result int

const (
	// Pending means the picker is still open.
	Pending Result = iota
	// Committed means the user confirmed; the host reads the selection.
	Committed
	// Cancelled means the picker closed without a selection.
	Cancelled
)
