package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorChoice controls whether escape sequences are emitted.
type ColorChoice int

const (
	// ColorAuto emits color only when writing to a terminal.
	ColorAuto ColorChoice = iota
	ColorAlways
	ColorNever
)

// ParseColorChoice parses "auto", "always" or "never".
func ParseColorChoice(s string) (ColorChoice, bool) {
	switch s {
	case "auto", "":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	}
	return ColorAuto, false
}

// NewRenderer returns a lipgloss renderer for w. Status lines are usually
// piped into a host that draws them, so ColorAlways falls back to true color
// when w is not a terminal.
func NewRenderer(w io.Writer, choice ColorChoice) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	tty := IsTerminal(w)

	switch {
	case choice == ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case choice == ColorAlways && !tty:
		r.SetColorProfile(termenv.TrueColor)
	case choice == ColorAuto && !tty:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
