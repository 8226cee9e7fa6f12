package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikanfactory/cxline/internal/style"
)

func TestIconCatalogs(t *testing.T) {
	if len(PlainIcons) != 16 {
		t.Errorf("len(PlainIcons) = %d, want 16", len(PlainIcons))
	}
	if len(NerdIcons) != 15 {
		t.Errorf("len(NerdIcons) = %d, want 15", len(NerdIcons))
	}
}

func TestIconPicker_Open(t *testing.T) {
	tests := []struct {
		name    string
		mode    style.Mode
		initial string
		variant IconVariant
		index   int
	}{
		{"plain", style.Plain, "x", VariantPlain, 0},
		{"nerd font", style.NerdFont, "x", VariantNerdFont, 0},
		{"powerline uses nerd font", style.Powerline, "x", VariantNerdFont, 0},
		{"initial preselected", style.Plain, "🌿", VariantPlain, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewIconPicker()
			p.Open(tt.mode, tt.initial)
			if p.Variant() != tt.variant || p.SelectedIndex() != tt.index {
				t.Errorf("variant %s index %d, want %s %d", p.Variant(), p.SelectedIndex(), tt.variant, tt.index)
			}
			icon, _, ok := p.Selection()
			if !ok || icon != tt.initial {
				t.Errorf("Selection() = %q, %v, want %q", icon, ok, tt.initial)
			}
		})
	}
}

func TestIconPicker_Navigation(t *testing.T) {
	p := NewIconPicker()
	p.Open(style.Plain, "")
	p.View(24, 10) // 4 columns

	p.MoveHorizontal(-1)
	if icon, _, _ := p.Selection(); icon != "▶" {
		t.Errorf("left from 0 = %q, want last icon", icon)
	}

	p.MoveHorizontal(1)
	p.MoveVertical(1)
	if p.SelectedIndex() != 4 {
		t.Errorf("SelectedIndex() = %d, want 4", p.SelectedIndex())
	}
	if icon, variant, _ := p.Selection(); icon != "📊" || variant != VariantPlain {
		t.Errorf("Selection() = %q %s", icon, variant)
	}

	p.CycleMode()
	if p.Variant() != VariantNerdFont || p.SelectedIndex() != 0 {
		t.Errorf("CycleMode() variant %s index %d", p.Variant(), p.SelectedIndex())
	}
	if icon, _, _ := p.Selection(); icon != NerdIcons[0].Glyph {
		t.Errorf("Selection() = %q, want first nerd icon", icon)
	}

	p.Select(14)
	p.MoveVertical(1)
	if p.SelectedIndex() != 14 {
		t.Errorf("bottom row should clamp, got %d", p.SelectedIndex())
	}
}

func TestIconPicker_Custom(t *testing.T) {
	p := NewIconPicker()
	p.Open(style.NerdFont, "old")

	p.StartCustom()
	if !p.Editing() {
		t.Fatal("StartCustom() did not enter custom input")
	}
	if p.FinishCustom() {
		t.Error("empty custom input should not commit")
	}
	if icon, _, _ := p.Selection(); icon != "old" {
		t.Errorf("Selection() = %q, want unchanged", icon)
	}

	p.StartCustom()
	p.InputChar('λ')
	p.InputChar('\x01')
	p.InputChar('x')
	p.Backspace()
	p.MoveHorizontal(1)
	if !p.FinishCustom() {
		t.Fatal("FinishCustom() = false")
	}
	if icon, _, _ := p.Selection(); icon != "λ" {
		t.Errorf("Selection() = %q, want %q", icon, "λ")
	}
}

func TestIconPicker_Update(t *testing.T) {
	p := NewIconPicker()
	p.Open(style.Plain, "")

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if !p.Editing() {
		t.Fatal("c should start custom input")
	}
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	if r := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); r != Committed {
		t.Errorf("enter in custom = %v, want Committed", r)
	}
	if icon, _, _ := p.Selection(); icon != "ab" {
		t.Errorf("Selection() = %q, want %q", icon, "ab")
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if p.Editing() || !p.IsOpen() {
		t.Error("esc in custom input should only leave custom input")
	}
	if r := p.Update(tea.KeyMsg{Type: tea.KeyEscape}); r != Cancelled || p.IsOpen() {
		t.Errorf("esc = %v open %v", r, p.IsOpen())
	}
}

func TestIconPicker_View(t *testing.T) {
	p := NewIconPicker()
	p.Open(style.Plain, "🤖")

	view := p.View(48, 6)
	for _, want := range []string{"Icon Selector", "[•] Emoji", "[ 🤖 ]", "Selected: Robot (Model)", "[c] Custom"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	p.StartCustom()
	p.InputChar('z')
	if view := p.View(48, 6); !strings.Contains(view, "Custom: > z <") {
		t.Errorf("custom view = %s", view)
	}
}

func TestIconCell(t *testing.T) {
	for _, glyph := range []string{"🤖", "✓", NerdIcons[0].Glyph} {
		for _, selected := range []bool{false, true} {
			cell := iconCell(glyph, selected)
			if !strings.Contains(cell, glyph) {
				t.Errorf("iconCell(%q) = %q", glyph, cell)
			}
		}
	}
}
