package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/segment"
	"github.com/mikanfactory/cxline/internal/style"
)

// BuildLine lays out collected segments according to cfg.Style. Segments
// disabled in cfg are skipped even when present in collected.
func BuildLine(cfg model.Config, collected []segment.Collected) Line {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Style == style.Powerline {
		return buildPowerline(cfg, collected)
	}
	return buildPlain(cfg, collected)
}

func buildPlain(cfg model.Config, collected []segment.Collected) Line {
	sep := cfg.Separator
	if sep == "" {
		sep = style.SeparatorSimple
	}

	var line Line
	first := true
	for _, c := range collected {
		seg := cfg.Segment(c.ID)
		if !seg.Enabled {
			continue
		}
		if !first {
			line = append(line, Span{Text: sep, Style: Style{Dim: true}})
		}
		first = false

		if icon := iconFor(cfg, c); icon != "" {
			line = append(line, Span{Text: icon + " ", Style: Style{Fg: colorOf(seg.Colors.Icon)}})
		}

		text := Style{Fg: colorOf(seg.Colors.Text), Bold: seg.Styles.TextBold}
		line = append(line, Span{Text: c.Data.Primary, Style: text})
		if c.Data.Secondary != "" {
			line = append(line, Span{Text: " " + c.Data.Secondary, Style: text})
		}
	}
	return line
}

func buildPowerline(cfg model.Config, collected []segment.Collected) Line {
	var enabled []segment.Collected
	for _, c := range collected {
		if cfg.Segment(c.ID).Enabled {
			enabled = append(enabled, c)
		}
	}

	var line Line
	for i, c := range enabled {
		seg := cfg.Segment(c.ID)
		bg := colorOf(seg.Colors.Background)
		st := Style{Fg: colorOf(seg.Colors.Text), Bg: bg, Bold: seg.Styles.TextBold}

		line = append(line, Span{Text: " ", Style: st})

		if icon := iconFor(cfg, c); icon != "" {
			iconStyle := st
			if seg.Colors.Icon != nil {
				iconStyle.Fg = seg.Colors.Icon.Lipgloss()
			}
			line = append(line, Span{Text: icon + " ", Style: iconStyle})
		}

		line = append(line, Span{Text: c.Data.Primary, Style: st})
		if c.Data.Secondary != "" {
			line = append(line, Span{Text: " " + c.Data.Secondary, Style: st})
		}
		line = append(line, Span{Text: " ", Style: st})

		if i < len(enabled)-1 {
			next := cfg.Segment(enabled[i+1].ID)
			line = append(line, Span{
				Text:  style.PowerlineArrow,
				Style: Style{Fg: bg, Bg: colorOf(next.Colors.Background)},
			})
		}
	}
	return line
}

// iconFor prefers a collector-supplied dynamic icon over the configured one.
func iconFor(cfg model.Config, c segment.Collected) string {
	if icon := c.Data.Metadata[segment.MetaDynamicIcon]; icon != "" {
		return icon
	}
	return cfg.Segment(c.ID).Icon.Resolve(cfg.Style)
}

func colorOf(c *style.Color) lipgloss.Color {
	if c == nil {
		return ""
	}
	return c.Lipgloss()
}
