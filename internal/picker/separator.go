package picker

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikanfactory/cxline/internal/style"
)

// SeparatorPreset is a named separator offered by the SeparatorEditor.
type SeparatorPreset struct {
	Name        string
	Value       string
	Description string
}

var SeparatorPresets = []SeparatorPreset{
	{Name: "Pipe", Value: " | ", Description: "Classic pipe"},
	{Name: "Thin", Value: style.SeparatorSimple, Description: "Thin vertical line"},
	{Name: "Arrow", Value: style.PowerlineArrow, Description: "Powerline arrow"},
	{Name: "Space", Value: "  ", Description: "Double space"},
	{Name: "Dot", Value: " • ", Description: "Middle dot"},
}

// SeparatorEditor edits the separator drawn between plain segments, either
// by picking a preset or typing.
type SeparatorEditor struct {
	open   bool
	input  []rune
	preset int
}

// NewSeparatorEditor returns a closed editor.
func NewSeparatorEditor() *SeparatorEditor {
	return &SeparatorEditor{preset: -1}
}

// Open starts from current and highlights the preset it matches, if any.
func (e *SeparatorEditor) Open(current string) {
	e.open = true
	e.input = []rune(current)
	e.preset = -1
	for i, p := range SeparatorPresets {
		if p.Value == current {
			e.preset = i
			break
		}
	}
}

func (e *SeparatorEditor) Close() {
	e.open = false
	e.input = nil
	e.preset = -1
}

func (e *SeparatorEditor) IsOpen() bool { return e.open }

// Preset returns the highlighted preset index.
func (e *SeparatorEditor) Preset() (int, bool) {
	return e.preset, e.preset >= 0
}

func (e *SeparatorEditor) Value() string {
	return string(e.input)
}

func (e *SeparatorEditor) InputChar(r rune) {
	if unicode.IsControl(r) {
		return
	}
	e.input = append(e.input, r)
	e.preset = -1
}

func (e *SeparatorEditor) Backspace() {
	if len(e.input) > 0 {
		e.input = e.input[:len(e.input)-1]
	}
	e.preset = -1
}

func (e *SeparatorEditor) Clear() {
	e.input = nil
	e.preset = -1
}

// MovePreset moves the preset highlight, clamping at both ends. With no
// highlight, moving down picks the first preset and moving up the last.
func (e *SeparatorEditor) MovePreset(delta int) {
	switch {
	case e.preset >= 0:
		e.preset = min(max(e.preset+delta, 0), len(SeparatorPresets)-1)
	case delta > 0:
		e.preset = 0
	default:
		e.preset = len(SeparatorPresets) - 1
	}
	e.input = []rune(SeparatorPresets[e.preset].Value)
}

// Update applies a key message.
func (e *SeparatorEditor) Update(msg tea.Msg) Result {
	key, ok := msg.(tea.KeyMsg)
	if !e.open || !ok {
		return Pending
	}

	switch key.Type {
	case tea.KeyEscape:
		e.Close()
		return Cancelled
	case tea.KeyEnter:
		return Committed
	case tea.KeyUp:
		e.MovePreset(-1)
	case tea.KeyDown:
		e.MovePreset(1)
	case tea.KeyBackspace:
		e.Backspace()
	case tea.KeyCtrlU:
		e.Clear()
	case tea.KeySpace:
		e.InputChar(' ')
	case tea.KeyRunes:
		for _, r := range key.Runes {
			e.InputChar(r)
		}
	}
	return Pending
}

func (e *SeparatorEditor) View() string {
	if !e.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Separator") + "\n\n")
	b.WriteString(labelStyle.Render("Value: ") + fmt.Sprintf("%q", e.Value()) + "\n\n")
	for i, p := range SeparatorPresets {
		line := fmt.Sprintf("%-6s %q  %s", p.Name, p.Value, p.Description)
		if i == e.preset {
			b.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("[↑↓] Preset  [Ctrl+U] Clear  [Enter] Apply  [Esc] Cancel"))
	return b.String()
}
