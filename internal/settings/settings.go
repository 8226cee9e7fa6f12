// Package settings resolves the CLI's own options from defaults, CXLINE_*
// environment variables and command-line flags.
package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mikanfactory/cxline/internal/config"
	"github.com/mikanfactory/cxline/internal/render"
)

const (
	KeyConfigDir = "config-dir"
	KeyDebug     = "debug"
	KeyTheme     = "theme"
	KeyStyle     = "style"
	KeyWidth     = "width"
	KeyColor     = "color"
)

const envPrefix = "CXLINE"

// Settings are the resolved options of one CLI run.
type Settings struct {
	ConfigDir string
	Debug     bool
	Theme     string
	Style     string
	Width     int
	Color     render.ColorChoice
}

// New returns a viper instance with defaults and environment lookup set up.
// CXLINE_CONFIG_DIR maps to config-dir.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyConfigDir, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTheme, "")
	v.SetDefault(KeyStyle, "")
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyColor, "auto")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known key that flags defines. Flags only take
// precedence over the environment when set on the command line.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyConfigDir, KeyDebug, KeyTheme, KeyStyle, KeyWidth, KeyColor} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Resolve reads the settings from v. An empty config dir resolves to
// ~/.codex/cxline and a leading "~/" is expanded.
func Resolve(v *viper.Viper) (Settings, error) {
	dir := strings.TrimSpace(v.GetString(KeyConfigDir))
	var err error
	if dir == "" {
		dir, err = config.DefaultDir()
	} else {
		dir, err = config.ExpandHome(dir)
	}
	if err != nil {
		return Settings{}, err
	}

	color, ok := render.ParseColorChoice(v.GetString(KeyColor))
	if !ok {
		return Settings{}, fmt.Errorf("invalid color choice %q (want auto, always or never)", v.GetString(KeyColor))
	}

	width := v.GetInt(KeyWidth)
	if width < 0 {
		return Settings{}, fmt.Errorf("invalid width %d", width)
	}

	return Settings{
		ConfigDir: dir,
		Debug:     v.GetBool(KeyDebug),
		Theme:     strings.TrimSpace(v.GetString(KeyTheme)),
		Style:     strings.TrimSpace(v.GetString(KeyStyle)),
		Width:     width,
		Color:     color,
	}, nil
}

// Overrides returns the theme and style replacements applied at render time.
func (s Settings) Overrides() config.Overrides {
	return config.Overrides{Theme: s.Theme, Style: s.Style}
}
