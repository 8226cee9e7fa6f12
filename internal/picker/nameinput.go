package picker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxNameLength is the longest name a NameInput accepts, in runes.
const MaxNameLength = 32

// NameInput is a single-line dialog for naming a custom theme.
type NameInput struct {
	open   bool
	title  string
	prompt string
	input  textinput.Model
}

// NewNameInput returns a closed dialog.
func NewNameInput() *NameInput {
	ti := textinput.New()
	ti.Placeholder = "my-theme"
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength
	return &NameInput{input: ti}
}

// Open shows the dialog with an empty input. The returned command starts the
// cursor blink.
func (n *NameInput) Open(title, prompt string) tea.Cmd {
	n.open = true
	n.title = title
	n.prompt = prompt
	n.input.SetValue("")
	return n.input.Focus()
}

// Close hides the dialog and clears the input.
func (n *NameInput) Close() {
	n.open = false
	n.input.SetValue("")
	n.input.Blur()
}

func (n *NameInput) IsOpen() bool { return n.open }

// InputChar appends r unless it is a control character or the input is full.
func (n *NameInput) InputChar(r rune) {
	value := n.input.Value()
	if unicode.IsControl(r) || utf8.RuneCountInString(value) >= MaxNameLength {
		return
	}
	n.input.SetValue(value + string(r))
	n.input.CursorEnd()
}

func (n *NameInput) Backspace() {
	value := []rune(n.input.Value())
	if len(value) == 0 {
		return
	}
	n.input.SetValue(string(value[:len(value)-1]))
	n.input.CursorEnd()
}

func (n *NameInput) Value() string {
	return n.input.Value()
}

// Update applies a message. Enter commits a non-blank name.
func (n *NameInput) Update(msg tea.Msg) (Result, tea.Cmd) {
	if !n.open {
		return Pending, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEscape:
			n.Close()
			return Cancelled, nil
		case tea.KeyEnter:
			if strings.TrimSpace(n.Value()) == "" {
				return Pending, nil
			}
			return Committed, nil
		case tea.KeyBackspace:
			n.Backspace()
			return Pending, nil
		case tea.KeySpace:
			n.InputChar(' ')
			return Pending, nil
		case tea.KeyRunes:
			for _, r := range key.Runes {
				n.InputChar(r)
			}
			return Pending, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return Pending, cmd
}

func (n *NameInput) View() string {
	if !n.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(n.title) + "\n\n")
	b.WriteString(labelStyle.Render(n.prompt) + "\n")
	b.WriteString(n.input.View() + "\n\n")
	b.WriteString(helpStyle.Render("[Enter] Confirm  [Esc] Cancel"))
	return b.String()
}
