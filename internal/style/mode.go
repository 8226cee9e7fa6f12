package style

import "fmt"

// Mode selects how the status line is drawn.
type Mode int

const (
	// NerdFont is the zero value so an unset mode resolves to the default.
	NerdFont Mode = iota
	Plain
	Powerline
)

// DefaultMode is used when a document does not name a style.
const DefaultMode = NerdFont

var modeNames = map[Mode]string{
	Plain:     "plain",
	NerdFont:  "nerd_font",
	Powerline: "powerline",
}

// Modes lists every mode in cycling order.
var Modes = []Mode{Plain, NerdFont, Powerline}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses the persisted name of a mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return DefaultMode, fmt.Errorf("unknown style mode %q", s)
}

// Next returns the mode after m in cycling order.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return DefaultMode
}

func (m Mode) MarshalText() ([]byte, error) {
	s, ok := modeNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown style mode %d", int(m))
	}
	return []byte(s), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Separator and powerline glyphs.
const (
	SeparatorSimple = " │ "
	PowerlineArrow  = "\ue0b0"
	PowerlineThin   = "\ue0b1"
)

// IconSet holds the icon drawn for a segment under each icon vocabulary.
type IconSet struct {
	Plain    string
	NerdFont string
}

// Resolve picks the icon for the given mode. Powerline uses Nerd Font glyphs.
func (s IconSet) Resolve(mode Mode) string {
	if mode == Plain {
		return s.Plain
	}
	return s.NerdFont
}

// ColorConfig holds the optional colors of a segment. A nil field leaves the
// terminal default in place.
type ColorConfig struct {
	Icon       *Color
	Text       *Color
	Background *Color
}

// NewColorConfig returns a ColorConfig with icon and text colors set.
func NewColorConfig(icon, text Color) ColorConfig {
	return ColorConfig{Icon: icon.Ptr(), Text: text.Ptr()}
}

// WithBackground returns a copy of c with the background set.
func (c ColorConfig) WithBackground(bg Color) ColorConfig {
	c.Background = bg.Ptr()
	return c
}

// Clone returns a deep copy so edits do not leak between configs.
func (c ColorConfig) Clone() ColorConfig {
	clone := func(p *Color) *Color {
		if p == nil {
			return nil
		}
		return p.Ptr()
	}
	return ColorConfig{Icon: clone(c.Icon), Text: clone(c.Text), Background: clone(c.Background)}
}

// Equal compares the colors by value.
func (c ColorConfig) Equal(o ColorConfig) bool {
	eq := func(a, b *Color) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	}
	return eq(c.Icon, o.Icon) && eq(c.Text, o.Text) && eq(c.Background, o.Background)
}

// TextStyle holds text attributes of a segment.
type TextStyle struct {
	TextBold bool
}

// Default icons per segment.
var (
	IconModel     = IconSet{Plain: "🤖", NerdFont: "\ue26d"}
	IconDirectory = IconSet{Plain: "📁", NerdFont: "\uf07c"}
	IconGit       = IconSet{Plain: "🔀", NerdFont: "\ue725"}
	IconContext   = IconSet{Plain: "📊", NerdFont: "\uf080"}
	IconUsage     = IconSet{Plain: "⏱", NerdFont: "\uf017"}
)
