package theme

import (
	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/style"
)

// DefaultName is the theme used when a requested theme cannot be found.
const DefaultName = "default"

// BuiltinNames lists the built-in themes in catalog order.
var BuiltinNames = []string{
	"default",
	"cometix",
	"minimal",
	"gruvbox",
	"nord",
	"powerline-dark",
	"powerline-light",
	"powerline-rose-pine",
	"powerline-tokyo-night",
}

var builtins = map[string]func() model.Config{
	"default":               defaultTheme,
	"cometix":               cometix,
	"minimal":               minimal,
	"gruvbox":               gruvbox,
	"nord":                  nord,
	"powerline-dark":        powerlineDark,
	"powerline-light":       powerlineLight,
	"powerline-rose-pine":   powerlineRosePine,
	"powerline-tokyo-night": powerlineTokyoNight,
}

// Builtin returns a fresh copy of the named built-in theme.
func Builtin(name string) (model.Config, bool) {
	fn, ok := builtins[name]
	if !ok {
		return model.Config{}, false
	}
	return fn(), true
}

// IsBuiltin reports whether name is one of the built-in themes.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Default returns the configuration written for a new user.
func Default() model.Config {
	return cometix()
}

// Fallback returns the theme used when a name resolves to nothing.
func Fallback() model.Config {
	return defaultTheme()
}

var standardIcons = [5]style.IconSet{
	{Plain: "🤖", NerdFont: "\ue26d"},
	{Plain: "📁", NerdFont: "\U000f024b"},
	{Plain: "🌿", NerdFont: "\U000f02a2"},
	{Plain: "⚡️", NerdFont: "\uf49b"},
	{Plain: "📊", NerdFont: "\U000f0a9e"},
}

var minimalIcons = [5]style.IconSet{
	{Plain: "✽", NerdFont: "\uf2d0"},
	{Plain: "◐", NerdFont: "\U000f024b"},
	{Plain: "※", NerdFont: "\U000f02a2"},
	{Plain: "◐", NerdFont: "\uf49b"},
	{Plain: "📊", NerdFont: "\U000f0a9e"},
}

// look describes one segment of a preset.
type look struct {
	icon, text style.Color
	bg         *style.Color
	bold       bool
}

func build(name string, mode style.Mode, sep string, icons [5]style.IconSet, looks [5]look) model.Config {
	cfg := model.Config{
		Enabled:   true,
		Theme:     name,
		Style:     mode,
		Separator: sep,
	}
	for i, id := range model.SegmentOrder {
		l := looks[i]
		colors := style.NewColorConfig(l.icon, l.text)
		if l.bg != nil {
			colors = colors.WithBackground(*l.bg)
		}
		*cfg.SegmentMut(id) = model.SegmentConfig{
			ID:      id,
			Enabled: true,
			Icon:    icons[i],
			Colors:  colors,
			Styles:  style.TextStyle{TextBold: l.bold},
		}
	}
	return cfg
}

func ansiLooks(bold bool) [5]look {
	c := style.C16
	return [5]look{
		{icon: c(style.BrightCyan), text: c(style.BrightCyan), bold: bold},
		{icon: c(style.BrightYellow), text: c(style.BrightGreen), bold: bold},
		{icon: c(style.BrightBlue), text: c(style.BrightBlue), bold: bold},
		{icon: c(style.BrightMagenta), text: c(style.BrightMagenta), bold: bold},
		{icon: c(style.BrightCyan), text: c(style.BrightCyan)},
	}
}

// powerlineLooks pairs foreground colors with segment backgrounds.
func powerlineLooks(fg [5]style.Color, bg [5]style.Color) [5]look {
	var looks [5]look
	for i := range looks {
		looks[i] = look{icon: fg[i], text: fg[i], bg: bg[i].Ptr()}
	}
	return looks
}

func defaultTheme() model.Config {
	return build("default", style.Plain, style.SeparatorSimple, standardIcons, ansiLooks(false))
}

func cometix() model.Config {
	return build("cometix", style.NerdFont, style.SeparatorSimple, standardIcons, ansiLooks(true))
}

func minimal() model.Config {
	return build("minimal", style.Plain, style.SeparatorSimple, minimalIcons, ansiLooks(false))
}

func gruvbox() model.Config {
	orange, green, cyan := style.C256(208), style.C256(142), style.C256(109)
	return build("gruvbox", style.NerdFont, style.SeparatorSimple, standardIcons, [5]look{
		{icon: orange, text: orange, bold: true},
		{icon: green, text: green, bold: true},
		{icon: cyan, text: cyan, bold: true},
		{icon: style.C16(style.Magenta), text: style.C16(style.Magenta), bold: true},
		{icon: style.C16(style.BrightCyan), text: style.C16(style.BrightCyan)},
	})
}

func nord() model.Config {
	polar := style.RGB(46, 52, 64)
	return build("nord", style.Powerline, style.PowerlineArrow, standardIcons, powerlineLooks(
		[5]style.Color{polar, polar, polar, polar, polar},
		[5]style.Color{
			style.RGB(136, 192, 208),
			style.RGB(163, 190, 140),
			style.RGB(129, 161, 193),
			style.RGB(180, 142, 173),
			style.RGB(235, 203, 139),
		},
	))
}

func powerlineDark() model.Config {
	white, gray := style.RGB(255, 255, 255), style.RGB(209, 213, 219)
	return build("powerline-dark", style.Powerline, style.PowerlineArrow, standardIcons, powerlineLooks(
		[5]style.Color{white, white, white, gray, gray},
		[5]style.Color{
			style.RGB(45, 45, 45),
			style.RGB(139, 69, 19),
			style.RGB(64, 64, 64),
			style.RGB(55, 65, 81),
			style.RGB(45, 50, 59),
		},
	))
}

func powerlineLight() model.Config {
	black, white := style.RGB(0, 0, 0), style.RGB(255, 255, 255)
	return build("powerline-light", style.Powerline, style.PowerlineArrow, standardIcons, powerlineLooks(
		[5]style.Color{black, white, white, white, white},
		[5]style.Color{
			style.RGB(135, 206, 235),
			style.RGB(255, 107, 71),
			style.RGB(79, 179, 217),
			style.RGB(107, 114, 128),
			style.RGB(40, 167, 69),
		},
	))
}

func powerlineRosePine() model.Config {
	return build("powerline-rose-pine", style.Powerline, style.PowerlineArrow, standardIcons, powerlineLooks(
		[5]style.Color{
			style.RGB(235, 188, 186),
			style.RGB(196, 167, 231),
			style.RGB(156, 207, 216),
			style.RGB(224, 222, 244),
			style.RGB(246, 193, 119),
		},
		[5]style.Color{
			style.RGB(25, 23, 36),
			style.RGB(38, 35, 58),
			style.RGB(31, 29, 46),
			style.RGB(82, 79, 103),
			style.RGB(35, 33, 54),
		},
	))
}

func powerlineTokyoNight() model.Config {
	return build("powerline-tokyo-night", style.Powerline, style.PowerlineArrow, standardIcons, powerlineLooks(
		[5]style.Color{
			style.RGB(252, 167, 234),
			style.RGB(130, 170, 255),
			style.RGB(195, 232, 141),
			style.RGB(192, 202, 245),
			style.RGB(224, 175, 104),
		},
		[5]style.Color{
			style.RGB(25, 27, 41),
			style.RGB(47, 51, 77),
			style.RGB(30, 32, 48),
			style.RGB(61, 89, 161),
			style.RGB(36, 40, 59),
		},
	))
}
