package picker

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/cxline/internal/style"
)

// Target is the segment color a ColorPicker edits.
type Target int

const (
	TargetIcon Target = iota
	TargetText
	TargetBackground
)

func (t Target) String() string {
	switch t {
	case TargetText:
		return "Text"
	case TargetBackground:
		return "Background"
	default:
		return "Icon"
	}
}

// ColorMode is the active palette of a ColorPicker.
type ColorMode int

const (
	ModeBasic ColorMode = iota
	ModeExtended
	ModeRGB
)

func (m ColorMode) String() string {
	switch m {
	case ModeExtended:
		return "extended"
	case ModeRGB:
		return "rgb"
	default:
		return "basic"
	}
}

// RGBField is the focused text field in RGB mode.
type RGBField int

const (
	FieldR RGBField = iota
	FieldG
	FieldB
	FieldHex
)

const (
	basicSize    = 16
	extendedSize = 256

	basicCellWidth    = 6
	extendedCellWidth = 7

	swatchSelected = "[ ██ ]"
	swatchPlain    = "  ██  "
)

// ColorPicker selects a color from the 16-color palette, the 256-color
// palette or typed RGB values.
type ColorPicker struct {
	open    bool
	target  Target
	mode    ColorMode
	current *style.Color

	basic    int
	extended int

	fields [4]string
	field  RGBField

	// Render feedback consumed by vertical navigation and paging.
	basicCols    int
	extendedCols int
	extendedRows int
}

// NewColorPicker returns a closed picker.
func NewColorPicker() *ColorPicker {
	return &ColorPicker{basicCols: 8, extendedCols: 8, extendedRows: 1}
}

// Open shows the picker for target, starting from initial.
func (p *ColorPicker) Open(target Target, initial *style.Color) {
	p.open = true
	p.target = target
	p.mode = ModeBasic
	p.resetNavigation()
	p.current = nil
	if initial != nil {
		p.current = initial.Ptr()
	}
}

// Close hides the picker and drops the pending selection.
func (p *ColorPicker) Close() {
	p.open = false
	p.current = nil
}

func (p *ColorPicker) IsOpen() bool { return p.open }

func (p *ColorPicker) Target() Target { return p.target }

func (p *ColorPicker) Mode() ColorMode { return p.mode }

// Field returns the focused RGB field.
func (p *ColorPicker) Field() RGBField { return p.field }

// FieldValue returns the text typed into f.
func (p *ColorPicker) FieldValue(f RGBField) string { return p.fields[f] }

// SelectedIndex returns the grid index of the active palette, or -1 in RGB
// mode.
func (p *ColorPicker) SelectedIndex() int {
	switch p.mode {
	case ModeBasic:
		return p.basic
	case ModeExtended:
		return p.extended
	}
	return -1
}

// Selection returns the color the picker would commit.
func (p *ColorPicker) Selection() (style.Color, bool) {
	if p.current == nil {
		return style.Color{}, false
	}
	return *p.current, true
}

// CycleMode switches palette. Navigation restarts, the color is kept.
func (p *ColorPicker) CycleMode() {
	p.mode = (p.mode + 1) % 3
	p.resetNavigation()
}

func (p *ColorPicker) resetNavigation() {
	p.basic = 0
	p.extended = 0
	p.fields = [4]string{}
	p.field = FieldR
}

func (p *ColorPicker) MoveHorizontal(delta int) {
	switch p.mode {
	case ModeBasic:
		p.basic = WrapHorizontal(p.basic, delta, basicSize)
		p.setCurrent(style.C16(uint8(p.basic)))
	case ModeExtended:
		p.extended = WrapHorizontal(p.extended, delta, extendedSize)
		p.setCurrent(style.C256(uint8(p.extended)))
	case ModeRGB:
		p.field = RGBField(WrapHorizontal(int(p.field), delta, 4))
	}
}

// MoveVertical is a no-op in RGB mode.
func (p *ColorPicker) MoveVertical(delta int) {
	switch p.mode {
	case ModeBasic:
		p.basic = MoveVertical(p.basic, delta, p.basicCols, basicSize)
		p.setCurrent(style.C16(uint8(p.basic)))
	case ModeExtended:
		p.extended = MoveVertical(p.extended, delta, p.extendedCols, extendedSize)
		p.setCurrent(style.C256(uint8(p.extended)))
	}
}

// Select jumps to index in the active grid, as a mouse click does.
func (p *ColorPicker) Select(index int) {
	switch p.mode {
	case ModeBasic:
		if index >= 0 && index < basicSize {
			p.basic = index
			p.setCurrent(style.C16(uint8(index)))
		}
	case ModeExtended:
		if index >= 0 && index < extendedSize {
			p.extended = index
			p.setCurrent(style.C256(uint8(index)))
		}
	}
}

// Page returns the visible page of the 256-color grid.
func (p *ColorPicker) Page() int {
	return Page(p.extended, p.extendedCols, p.extendedRows)
}

func (p *ColorPicker) setCurrent(c style.Color) {
	p.current = c.Ptr()
}

// InputChar types into the focused RGB field. Characters the field cannot
// hold are ignored.
func (p *ColorPicker) InputChar(r rune) {
	if p.mode != ModeRGB {
		return
	}
	value := p.fields[p.field]
	switch p.field {
	case FieldHex:
		if len(value) >= 6 || !isHexDigit(r) {
			return
		}
		p.fields[p.field] = value + strings.ToUpper(string(r))
	default:
		if len(value) >= 3 || r < '0' || r > '9' {
			return
		}
		p.fields[p.field] = value + string(r)
	}
	p.recompute()
}

func (p *ColorPicker) Backspace() {
	if p.mode != ModeRGB {
		return
	}
	if value := p.fields[p.field]; value != "" {
		p.fields[p.field] = value[:len(value)-1]
	}
	p.recompute()
}

// recompute prefers a complete hex value over the decimal fields and keeps
// the previous color while neither parses.
func (p *ColorPicker) recompute() {
	if hex := p.fields[FieldHex]; len(hex) == 6 {
		r, errR := strconv.ParseUint(hex[0:2], 16, 8)
		g, errG := strconv.ParseUint(hex[2:4], 16, 8)
		b, errB := strconv.ParseUint(hex[4:6], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			p.setCurrent(style.RGB(uint8(r), uint8(g), uint8(b)))
			return
		}
	}

	r, errR := strconv.ParseUint(p.fields[FieldR], 10, 8)
	g, errG := strconv.ParseUint(p.fields[FieldG], 10, 8)
	b, errB := strconv.ParseUint(p.fields[FieldB], 10, 8)
	if errR == nil && errG == nil && errB == nil {
		p.setCurrent(style.RGB(uint8(r), uint8(g), uint8(b)))
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Update applies a key or mouse message.
func (p *ColorPicker) Update(msg tea.Msg) Result {
	if !p.open {
		return Pending
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
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
		case tea.KeyBackspace:
			p.Backspace()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				p.InputChar(r)
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		size := basicSize
		if p.mode == ModeExtended {
			size = extendedSize
		}
		for i := range size {
			if zone.Get(SwatchZoneID(p.mode, i)).InBounds(msg) {
				p.Select(i)
				break
			}
		}
	}
	return Pending
}

// SwatchZoneID returns the bubblezone ID of a palette swatch.
func SwatchZoneID(mode ColorMode, index int) string {
	return fmt.Sprintf("swatch-%s-%d", mode, index)
}

// View renders the picker. width and height size the palette area and
// update the column and row counts used by navigation.
func (p *ColorPicker) View(width, height int) string {
	if !p.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Color Picker · "+p.target.String()) + "\n")
	b.WriteString(p.modeLine() + "\n\n")

	switch p.mode {
	case ModeBasic:
		b.WriteString(p.viewBasic(width, height))
	case ModeExtended:
		b.WriteString(p.viewExtended(width, height))
	case ModeRGB:
		b.WriteString(p.viewRGB())
	}

	b.WriteString("\n\n" + p.preview() + "\n")
	b.WriteString(helpStyle.Render("[Enter] Select  [Esc] Cancel  [Tab] Cycle Mode"))
	return b.String()
}

func (p *ColorPicker) modeLine() string {
	labels := []string{"Basic (16)", "Extended (256)", "RGB"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if ColorMode(i) == p.mode {
			parts[i] = activeStyle.Render("[•] " + label)
		} else {
			parts[i] = labelStyle.Render("[ ] " + label)
		}
	}
	return strings.Join(parts, "  ")
}

func swatch(id string, c style.Color, selected bool) string {
	text := swatchPlain
	if selected {
		text = swatchSelected
	}
	return zone.Mark(id, lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(text))
}

func (p *ColorPicker) viewBasic(width, height int) string {
	cols := Columns(width, basicCellWidth)
	p.basicCols = cols

	var lines []string
	for start := 0; start < basicSize; start += cols {
		if len(lines)*2 >= height {
			break
		}
		var row strings.Builder
		for i := start; i < min(start+cols, basicSize); i++ {
			row.WriteString(swatch(SwatchZoneID(ModeBasic, i), style.C16(uint8(i)), i == p.basic))
		}
		lines = append(lines, row.String())
	}

	out := strings.Join(lines, "\n\n")
	rowsNeeded := (basicSize + cols - 1) / cols
	if height > rowsNeeded*2 {
		out += "\n\n" + labelStyle.Render(fmt.Sprintf("Selected: %d (%s)", p.basic, style.ColorName(uint8(p.basic))))
	}
	return out
}

func (p *ColorPicker) viewExtended(width, height int) string {
	cols := Columns(width, extendedCellWidth)
	rows := 1
	if height > 3 {
		rows = (height - 2) / 2
	}
	p.extendedCols, p.extendedRows = cols, rows

	pageSize := cols * rows
	start := p.Page() * pageSize
	end := min(start+pageSize, extendedSize)

	var lines []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var row strings.Builder
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			row.WriteString(swatch(SwatchZoneID(ModeExtended, i), style.C256(uint8(i)), i == p.extended) + " ")
		}
		lines = append(lines, row.String())
	}

	out := strings.Join(lines, "\n\n")
	if height > 2 {
		out += "\n\n" + labelStyle.Render(fmt.Sprintf("Selected: %d | Use ↑↓←→ to navigate", p.extended))
	}
	return out
}

func (p *ColorPicker) viewRGB() string {
	field := func(f RGBField) string {
		if f == p.field {
			return activeStyle.Render("> " + p.fields[f] + " <")
		}
		return p.fields[f]
	}
	return fmt.Sprintf("R[%s]  G[%s]  B[%s]\n\nHex: #%s", field(FieldR), field(FieldG), field(FieldB), field(FieldHex))
}

func (p *ColorPicker) preview() string {
	if p.current == nil {
		return "████ No color selected"
	}
	return lipgloss.NewStyle().Foreground(p.current.Lipgloss()).Render("████ " + p.current.String())
}
