// Package render turns collected segment data into a styled status line.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Ellipsis ends a truncated line.
const Ellipsis = "…"

// Style is the terminal styling of a span. An empty color leaves the
// terminal default in place.
type Style struct {
	Fg   lipgloss.Color
	Bg   lipgloss.Color
	Bold bool
	Dim  bool
}

// Lipgloss returns s as a lipgloss style bound to r.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	return st
}

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style Style
}

// Line is one rendered status line.
type Line []Span

// Text returns the unstyled text of l.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the number of terminal cells l occupies.
func (l Line) Width() int {
	return ansi.StringWidth(l.Text())
}

// Truncate returns l cut to at most width cells. Spans past the limit are
// dropped and the result ends with an ellipsis in the style of the last kept
// span.
func (l Line) Truncate(width int) Line {
	if l.Width() <= width {
		return l
	}
	if width <= 0 {
		return nil
	}

	budget := width - ansi.StringWidth(Ellipsis)
	var out Line
	var last Style
	for _, s := range l {
		w := ansi.StringWidth(s.Text)
		if w <= budget {
			out = append(out, s)
			budget -= w
			last = s.Style
			continue
		}
		if cut := ansi.Truncate(s.Text, budget, ""); cut != "" {
			out = append(out, Span{Text: cut, Style: s.Style})
		}
		last = s.Style
		break
	}
	return append(out, Span{Text: Ellipsis, Style: last})
}

// Render paints l with r. A renderer without color support yields the plain
// text.
func (l Line) Render(r *lipgloss.Renderer) string {
	if r.ColorProfile() == termenv.Ascii {
		return l.Text()
	}
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Style.Lipgloss(r).Render(s.Text))
	}
	return b.String()
}
