package picker

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/cxline/internal/style"
)

// IconVariant selects the icon vocabulary shown by an IconPicker.
type IconVariant int

const (
	VariantPlain IconVariant = iota
	VariantNerdFont
)

func (v IconVariant) String() string {
	if v == VariantNerdFont {
		return "nerd_font"
	}
	return "plain"
}

// Icon is a catalog entry.
type Icon struct {
	Glyph string
	Name  string
}

// PlainIcons are emoji and Unicode symbols that render without a patched font.
var PlainIcons = []Icon{
	{"🤖", "Robot (Model)"},
	{"💻", "Laptop"},
	{"📁", "Folder"},
	{"📂", "Open Folder"},
	{"📊", "Bar Chart"},
	{"🌿", "Branch (Git)"},
	{"🌱", "Seedling"},
	{"🔧", "Wrench"},
	{"⚡", "Lightning"},
	{"⭐", "Star"},
	{"✨", "Sparkles"},
	{"🔥", "Fire"},
	{"💎", "Gem"},
	{"✓", "Check"},
	{"●", "Circle"},
	{"▶", "Play"},
}

// NerdIcons require a Nerd Font.
var NerdIcons = []Icon{
	{"\ue26d", "Robot"},
	{"\U000f02a2", "Git Branch"},
	{"\U000f024b", "Folder"},
	{"\uf07b", "Folder Open"},
	{"\uf111", "Circle"},
	{"\uf135", "Rocket"},
	{"\uf49b", "Chart"},
	{"\uf0c9", "List"},
	{"\uf013", "Cog"},
	{"\uf015", "Home"},
	{"\uf0e7", "Lightning"},
	{"\uf121", "Code"},
	{"\uf126", "Code Fork"},
	{"\uf017", "Clock"},
	{"\uf080", "Bar Chart"},
}

const iconCellWidth = 6

// IconPicker selects a segment icon from a catalog or typed input.
type IconPicker struct {
	open    bool
	variant IconVariant
	index   int
	current string

	custom bool
	input  []rune

	cols int
	rows int
}

// NewIconPicker returns a closed picker.
func NewIconPicker() *IconPicker {
	return &IconPicker{cols: 8, rows: 1}
}

// Open shows the catalog matching mode. initial is kept as the selection
// until the user navigates.
func (p *IconPicker) Open(mode style.Mode, initial string) {
	p.open = true
	p.variant = VariantNerdFont
	if mode == style.Plain {
		p.variant = VariantPlain
	}
	p.index = 0
	p.current = initial
	p.custom = false
	p.input = nil

	for i, icon := range p.icons() {
		if icon.Glyph == initial {
			p.index = i
			break
		}
	}
}

func (p *IconPicker) Close() {
	p.open = false
	p.custom = false
	p.input = nil
}

func (p *IconPicker) IsOpen() bool { return p.open }

func (p *IconPicker) Variant() IconVariant { return p.variant }

func (p *IconPicker) SelectedIndex() int { return p.index }

// Editing reports whether custom input is active.
func (p *IconPicker) Editing() bool { return p.custom }

func (p *IconPicker) icons() []Icon {
	if p.variant == VariantNerdFont {
		return NerdIcons
	}
	return PlainIcons
}

// CycleMode toggles between the plain and Nerd Font catalogs.
func (p *IconPicker) CycleMode() {
	if p.variant == VariantPlain {
		p.variant = VariantNerdFont
	} else {
		p.variant = VariantPlain
	}
	p.index = 0
	p.current = p.icons()[0].Glyph
}

func (p *IconPicker) MoveHorizontal(delta int) {
	if p.custom {
		return
	}
	p.index = WrapHorizontal(p.index, delta, len(p.icons()))
	p.current = p.icons()[p.index].Glyph
}

func (p *IconPicker) MoveVertical(delta int) {
	if p.custom {
		return
	}
	p.index = MoveVertical(p.index, delta, p.cols, len(p.icons()))
	p.current = p.icons()[p.index].Glyph
}

// Select jumps to a catalog entry, as a mouse click does.
func (p *IconPicker) Select(index int) {
	if p.custom || index < 0 || index >= len(p.icons()) {
		return
	}
	p.index = index
	p.current = p.icons()[index].Glyph
}

func (p *IconPicker) StartCustom() {
	p.custom = true
	p.input = nil
}

func (p *IconPicker) InputChar(r rune) {
	if p.custom && !unicode.IsControl(r) {
		p.input = append(p.input, r)
	}
}

func (p *IconPicker) Backspace() {
	if p.custom && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// FinishCustom leaves custom input and reports whether the typed icon became
// the selection.
func (p *IconPicker) FinishCustom() bool {
	p.custom = false
	if len(p.input) == 0 {
		return false
	}
	p.current = string(p.input)
	return true
}

// Selection returns the icon and the vocabulary it belongs to.
func (p *IconPicker) Selection() (string, IconVariant, bool) {
	if p.current == "" {
		return "", p.variant, false
	}
	return p.current, p.variant, true
}

// IconZoneID returns the bubblezone ID of a catalog cell.
func IconZoneID(v IconVariant, index int) string {
	return fmt.Sprintf("icon-%s-%d", v, index)
}

// Update applies a key or mouse message.
func (p *IconPicker) Update(msg tea.Msg) Result {
	if !p.open {
		return Pending
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.custom {
			return p.updateCustom(msg)
		}
		switch msg.Type {
		case tea.KeyEscape:
			p.Close()
			return Cancelled
		case tea.KeyEnter:
			return Committed
		case tea.KeyTab:
			p.CycleMode()
		case tea.KeyLeft:
			p.MoveHorizontal(-1)
		case tea.KeyRight:
			p.MoveHorizontal(1)
		case tea.KeyUp:
			p.MoveVertical(-1)
		case tea.KeyDown:
			p.MoveVertical(1)
		case tea.KeyRunes:
			if msg.String() == "c" {
				p.StartCustom()
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		for i := range p.icons() {
			if zone.Get(IconZoneID(p.variant, i)).InBounds(msg) {
				p.Select(i)
				break
			}
		}
	}
	return Pending
}

func (p *IconPicker) updateCustom(msg tea.KeyMsg) Result {
	switch msg.Type {
	case tea.KeyEscape:
		p.custom = false
		p.input = nil
	case tea.KeyEnter:
		if p.FinishCustom() {
			return Committed
		}
	case tea.KeyBackspace:
		p.Backspace()
	case tea.KeySpace:
		p.InputChar(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			p.InputChar(r)
		}
	}
	return Pending
}

// View renders the picker. width and height size the icon grid.
func (p *IconPicker) View(width, height int) string {
	if !p.open {
		return ""
	}

	icons := p.icons()
	p.cols = Columns(width, iconCellWidth)
	p.rows = max(height/2, 1)
	pageSize := p.cols * p.rows
	start := Page(p.index, p.cols, p.rows) * pageSize
	end := min(start+pageSize, len(icons))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Icon Selector") + "\n")
	if p.variant == VariantPlain {
		b.WriteString(activeStyle.Render("[•] Emoji") + "  " + labelStyle.Render("[ ] Nerd Font"))
	} else {
		b.WriteString(labelStyle.Render("[ ] Emoji") + "  " + activeStyle.Render("[•] Nerd Font"))
	}
	b.WriteString("\n\n")

	var lines []string
	for rowStart := start; rowStart < end; rowStart += p.cols {
		var row strings.Builder
		for i := rowStart; i < min(rowStart+p.cols, end); i++ {
			row.WriteString(zone.Mark(IconZoneID(p.variant, i), iconCell(icons[i].Glyph, i == p.index)))
		}
		lines = append(lines, row.String())
	}
	b.WriteString(strings.Join(lines, "\n\n"))

	b.WriteString("\n\n" + labelStyle.Render("Selected: "+icons[p.index].Name))
	if p.custom {
		b.WriteString("\n" + activeStyle.Render("Custom: > "+string(p.input)+" <"))
	} else if p.current != "" {
		b.WriteString("\n" + labelStyle.Render("Current: "+p.current))
	}

	help := "[Enter] Select  [Esc] Cancel  [Tab] Toggle Style  [c] Custom"
	if p.custom {
		help = "[Enter] Use Custom  [Esc] Back"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}

// iconCell pads glyph to a fixed cell so wide emoji and narrow symbols line
// up.
func iconCell(glyph string, selected bool) string {
	text := "  " + glyph + "  "
	if selected {
		text = "[ " + glyph + " ]"
	}
	if pad := iconCellWidth - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	if selected {
		return activeStyle.Render(text)
	}
	return text
}
