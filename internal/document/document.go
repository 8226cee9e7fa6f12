// Package document converts configurations to and from their persisted
// TOML and YAML forms.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/style"
)

// Format is a document encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// ParseFormat parses "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml", "":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("unknown format %q", s)
}

// ErrAmbiguousColor is returned when a color entry does not name exactly one
// of c16, c256 or r/g/b.
var ErrAmbiguousColor = errors.New("color must set exactly one of c16, c256 or r/g/b")

// Resolver returns the theme a document inherits missing fields from. It
// must return a complete configuration for every name, including "".
type Resolver func(theme string) model.Config

type configDoc struct {
	Enabled   *bool        `toml:"enabled" yaml:"enabled"`
	Theme     string       `toml:"theme" yaml:"theme"`
	Style     *style.Mode  `toml:"style" yaml:"style"`
	Separator *string      `toml:"separator" yaml:"separator"`
	Segments  *segmentsDoc `toml:"segments" yaml:"segments"`
}

type segmentsDoc struct {
	Model     *segmentDoc `toml:"model" yaml:"model"`
	Directory *segmentDoc `toml:"directory" yaml:"directory"`
	Git       *segmentDoc `toml:"git" yaml:"git"`
	Context   *segmentDoc `toml:"context" yaml:"context"`
	Usage     *segmentDoc `toml:"usage" yaml:"usage"`
}

func (s *segmentsDoc) slot(id model.SegmentID) **segmentDoc {
	switch id {
	case model.SegmentDirectory:
		return &s.Directory
	case model.SegmentGit:
		return &s.Git
	case model.SegmentContext:
		return &s.Context
	case model.SegmentUsage:
		return &s.Usage
	default:
		return &s.Model
	}
}

type segmentDoc struct {
	ID      string         `toml:"id" yaml:"id"`
	Enabled *bool          `toml:"enabled" yaml:"enabled"`
	Icon    *iconDoc       `toml:"icon" yaml:"icon"`
	Colors  *colorsDoc     `toml:"colors" yaml:"colors"`
	Styles  *stylesDoc     `toml:"styles" yaml:"styles"`
	Options map[string]any `toml:"options,omitempty" yaml:"options,omitempty"`
}

type iconDoc struct {
	Plain    *string `toml:"plain" yaml:"plain"`
	NerdFont *string `toml:"nerd_font" yaml:"nerd_font"`
}

// colorsDoc entries hold either a colorDoc table or a legacy color name.
type colorsDoc struct {
	Icon       any `toml:"icon,omitempty" yaml:"icon,omitempty"`
	Text       any `toml:"text,omitempty" yaml:"text,omitempty"`
	Background any `toml:"background,omitempty" yaml:"background,omitempty"`
}

type colorDoc struct {
	C16  *uint8 `toml:"c16" yaml:"c16,omitempty"`
	C256 *uint8 `toml:"c256" yaml:"c256,omitempty"`
	R    *uint8 `toml:"r" yaml:"r,omitempty"`
	G    *uint8 `toml:"g" yaml:"g,omitempty"`
	B    *uint8 `toml:"b" yaml:"b,omitempty"`
}

type stylesDoc struct {
	TextBold *bool `toml:"text_bold" yaml:"text_bold"`
}

// Encode serializes cfg in the given format. Every field is written so the
// result decodes to cfg regardless of the resolver.
func Encode(cfg model.Config, format Format) ([]byte, error) {
	doc := toDoc(cfg)

	switch format {
	case YAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// Decode parses data and fills any field it omits from the theme the
// document names, as returned by resolve.
func Decode(data []byte, format Format, resolve Resolver) (model.Config, error) {
	var doc configDoc

	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.Config{}, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return model.Config{}, fmt.Errorf("parsing toml: %w", err)
		}
	}

	cfg := resolve(doc.Theme).Clone()
	cfg.Enabled = true
	if doc.Enabled != nil {
		cfg.Enabled = *doc.Enabled
	}
	if doc.Theme != "" {
		cfg.Theme = doc.Theme
	}
	if doc.Style != nil {
		cfg.Style = *doc.Style
	}
	if doc.Separator != nil {
		cfg.Separator = *doc.Separator
	}

	if doc.Segments != nil {
		for _, id := range model.SegmentOrder {
			sd := *doc.Segments.slot(id)
			if sd == nil {
				continue
			}
			if err := applySegment(cfg.SegmentMut(id), sd); err != nil {
				return model.Config{}, fmt.Errorf("segment %s: %w", id, err)
			}
		}
	}

	return cfg, nil
}

func applySegment(seg *model.SegmentConfig, sd *segmentDoc) error {
	if sd.Enabled != nil {
		seg.Enabled = *sd.Enabled
	}
	if sd.Icon != nil {
		if sd.Icon.Plain != nil {
			seg.Icon.Plain = *sd.Icon.Plain
		}
		if sd.Icon.NerdFont != nil {
			seg.Icon.NerdFont = *sd.Icon.NerdFont
		}
	}
	if sd.Colors != nil {
		var colors style.ColorConfig
		var err error
		if colors.Icon, err = colorFromRaw(sd.Colors.Icon); err != nil {
			return fmt.Errorf("icon color: %w", err)
		}
		if colors.Text, err = colorFromRaw(sd.Colors.Text); err != nil {
			return fmt.Errorf("text color: %w", err)
		}
		if colors.Background, err = colorFromRaw(sd.Colors.Background); err != nil {
			return fmt.Errorf("background color: %w", err)
		}
		seg.Colors = colors
	}
	if sd.Styles != nil && sd.Styles.TextBold != nil {
		seg.Styles.TextBold = *sd.Styles.TextBold
	}
	if sd.Options != nil {
		seg.Options = maps.Clone(sd.Options)
	}
	return nil
}

// colorFromRaw converts a decoded color entry. TOML yields int64 values and
// YAML yields int; both decode into map[string]any.
func colorFromRaw(raw any) (*style.Color, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		c, ok := style.ColorFromName(v)
		if !ok {
			return nil, fmt.Errorf("unknown color name %q", v)
		}
		return &c, nil
	case map[string]any:
		var doc colorDoc
		for key, value := range v {
			n, err := toUint8(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "c16":
				doc.C16 = &n
			case "c256":
				doc.C256 = &n
			case "r":
				doc.R = &n
			case "g":
				doc.G = &n
			case "b":
				doc.B = &n
			default:
				return nil, fmt.Errorf("unknown color field %q", key)
			}
		}
		c, err := doc.color()
		if err != nil {
			return nil, err
		}
		return &c, nil
	}
	return nil, fmt.Errorf("unsupported color value %v", raw)
}

func toUint8(v any) (uint8, error) {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case uint64:
		if x > 255 {
			return 0, fmt.Errorf("value %d out of range 0..255", x)
		}
		n = int64(x)
	default:
		return 0, fmt.Errorf("value %v is not an integer", v)
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("value %d out of range 0..255", n)
	}
	return uint8(n), nil
}

func (d colorDoc) color() (style.Color, error) {
	rgb := d.R != nil || d.G != nil || d.B != nil
	set := 0
	for _, present := range []bool{d.C16 != nil, d.C256 != nil, rgb} {
		if present {
			set++
		}
	}
	if set != 1 {
		return style.Color{}, ErrAmbiguousColor
	}

	switch {
	case d.C16 != nil:
		return style.C16(*d.C16), nil
	case d.C256 != nil:
		return style.C256(*d.C256), nil
	}
	if d.R == nil || d.G == nil || d.B == nil {
		return style.Color{}, fmt.Errorf("%w: incomplete r/g/b", ErrAmbiguousColor)
	}
	return style.RGB(*d.R, *d.G, *d.B), nil
}

func colorToDoc(c *style.Color) any {
	if c == nil || !c.Valid() {
		return nil
	}
	v := *c
	switch v.Kind {
	case style.KindIndexed16:
		return &colorDoc{C16: &v.Code}
	case style.KindIndexed256:
		return &colorDoc{C256: &v.Code}
	default:
		return &colorDoc{R: &v.R, G: &v.G, B: &v.B}
	}
}

func toDoc(cfg model.Config) configDoc {
	enabled := cfg.Enabled
	mode := cfg.Style
	sep := cfg.Separator

	doc := configDoc{
		Enabled:   &enabled,
		Theme:     cfg.Theme,
		Style:     &mode,
		Separator: &sep,
		Segments:  &segmentsDoc{},
	}

	for _, id := range model.SegmentOrder {
		seg := cfg.Segment(id)
		segEnabled := seg.Enabled
		plain := seg.Icon.Plain
		nerd := seg.Icon.NerdFont
		bold := seg.Styles.TextBold

		var options map[string]any
		if len(seg.Options) > 0 {
			options = maps.Clone(seg.Options)
		}

		*doc.Segments.slot(id) = &segmentDoc{
			ID:      id.String(),
			Enabled: &segEnabled,
			Icon:    &iconDoc{Plain: &plain, NerdFont: &nerd},
			Colors: &colorsDoc{
				Icon:       colorToDoc(seg.Colors.Icon),
				Text:       colorToDoc(seg.Colors.Text),
				Background: colorToDoc(seg.Colors.Background),
			},
			Styles:  &stylesDoc{TextBold: &bold},
			Options: options,
		}
	}

	return doc
}
