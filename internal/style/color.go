package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorKind identifies which representation a Color carries.
type ColorKind uint8

const (
	KindIndexed16 ColorKind = iota + 1
	KindIndexed256
	KindRGB
)

// Color is one of a 16-color ANSI code, a 256-color palette index or a
// true-color RGB triple. The zero value is not a valid color; use the
// constructors.
type Color struct {
	Kind ColorKind
	Code uint8
	R    uint8
	G    uint8
	B    uint8
}

// C16 returns a standard or bright ANSI color. Callers pass 0..15.
func C16(code uint8) Color {
	return Color{Kind: KindIndexed16, Code: code}
}

// C256 returns a 256-color palette entry.
func C256(code uint8) Color {
	return Color{Kind: KindIndexed256, Code: code}
}

// RGB returns a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{Kind: KindRGB, R: r, G: g, B: b}
}

// Ptr returns a pointer to a copy of c, for optional color fields.
func (c Color) Ptr() *Color {
	return &c
}

// Valid reports whether c was built by one of the constructors.
func (c Color) Valid() bool {
	return c.Kind >= KindIndexed16 && c.Kind <= KindRGB
}

// Lipgloss converts c to a renderable terminal color. Indexed16 codes above
// 15 are rendered as the 256-palette entry with the same index.
func (c Color) Lipgloss() lipgloss.Color {
	switch c.Kind {
	case KindIndexed16, KindIndexed256:
		return lipgloss.Color(strconv.Itoa(int(c.Code)))
	case KindRGB:
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.Color("")
}

// Hex returns the #RRGGBB form of an RGB color, or an empty string for
// indexed colors.
func (c Color) Hex() string {
	if c.Kind != KindRGB {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	switch c.Kind {
	case KindIndexed16:
		return fmt.Sprintf("Color 16: %d (%s)", c.Code, ColorName(c.Code))
	case KindIndexed256:
		return fmt.Sprintf("Color 256: %d", c.Code)
	case KindRGB:
		return fmt.Sprintf("RGB: (%d, %d, %d)", c.R, c.G, c.B)
	}
	return "No color"
}

var ansi16Names = [16]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
	"DarkGray", "LightRed", "LightGreen", "LightYellow",
	"LightBlue", "LightMagenta", "LightCyan", "Gray",
}

// ColorName returns the display name of a 16-color code.
func ColorName(code uint8) string {
	if int(code) < len(ansi16Names) {
		return ansi16Names[code]
	}
	return "Unknown"
}

// ANSI 16-color codes.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var legacyNames = map[string]uint8{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"dark_gray":      BrightBlack,
	"dark_grey":      BrightBlack,
	"bright_black":   BrightBlack,
	"light_red":      BrightRed,
	"bright_red":     BrightRed,
	"light_green":    BrightGreen,
	"bright_green":   BrightGreen,
	"light_yellow":   BrightYellow,
	"bright_yellow":  BrightYellow,
	"light_blue":     BrightBlue,
	"bright_blue":    BrightBlue,
	"light_magenta":  BrightMagenta,
	"bright_magenta": BrightMagenta,
	"light_cyan":     BrightCyan,
	"bright_cyan":    BrightCyan,
	"gray":           BrightWhite,
	"grey":           BrightWhite,
	"bright_white":   BrightWhite,
}

// ColorFromName maps a legacy color name such as "light_blue" to its
// 16-color value. Names are matched case-insensitively.
func ColorFromName(name string) (Color, bool) {
	code, ok := legacyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return C16(code), true
}
