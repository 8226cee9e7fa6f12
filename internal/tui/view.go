package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/render"
	"github.com/mikanfactory/cxline/internal/segment"
	"github.com/mikanfactory/cxline/internal/style"
)

// samplePreview stands in for the repository until the real state arrives.
var samplePreview = segment.GitPreview{Branch: "main", Status: "✓"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cxline"))
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(previewStyle.Render(m.Preview()))
	b.WriteString("\n\n")

	if overlay := m.renderOverlay(); overlay != "" {
		b.WriteString(overlayStyle.Render(overlay))
	} else {
		for i, id := range model.SegmentOrder {
			b.WriteString(zone.Mark(SegmentZoneID(id), m.renderSegment(i)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.renderFields())
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return zone.Scan(b.String())
}

// Preview renders the status line for a sample session using the edited
// configuration.
func (m Model) Preview() string {
	line := render.BuildLine(m.cfg, segment.Collect(m.cfg, m.sampleContext(), segment.Collectors(nil)))
	if line == nil {
		return disabledStyle.Render("(status line disabled)")
	}
	return line.Truncate(max(m.width-4, 1)).Render(lipgloss.DefaultRenderer())
}

func (m Model) sampleContext() segment.Context {
	cwd := m.cwd
	if cwd == "" {
		cwd = "/home/user/cxline"
	}
	preview := samplePreview
	if m.gitPreview != nil {
		preview = *m.gitPreview
	}
	return segment.NewContext("gpt-5-codex", cwd).
		WithTokens(48_200, 272_000).
		WithRateLimit(37, "").
		WithGitPreview(preview)
}

func (m Model) renderHeader() string {
	sep := fmt.Sprintf("%q", m.cfg.Separator)
	header := fmt.Sprintf("Theme: %s  Style: %s  Separator: %s", m.cfg.Theme, m.cfg.Style, sep)
	if m.modified {
		header += "  " + modifiedStyle.Render("[modified]")
	}
	return headerStyle.Render(header)
}

func (m Model) renderSegment(i int) string {
	seg := m.cfg.Segment(model.SegmentOrder[i])

	mark := disabledStyle.Render("○")
	if seg.Enabled {
		mark = enabledStyle.Render("●")
	}
	text := fmt.Sprintf("%-10s %s", seg.ID, seg.Icon.Resolve(m.cfg.Style))

	if i == m.cursor {
		return segmentSelectedStyle.Render("> "+mark+" "+text)
	}
	return segmentStyle.Render(mark + " " + text)
}

func (m Model) renderFields() string {
	seg := m.cfg.Segment(model.SegmentOrder[m.cursor])

	tabs := make([]string, 0, fieldCount)
	for f := range fieldCount {
		label := f.String() + ": " + fieldValue(seg, f, m.cfg.Style)
		s := fieldStyle
		if f == m.field {
			s = fieldSelectedStyle
		}
		tabs = append(tabs, zone.Mark(FieldZoneID(f), s.Render(label)))
	}
	return " " + strings.Join(tabs, "  ")
}

func fieldValue(seg model.SegmentConfig, f Field, mode style.Mode) string {
	switch f {
	case FieldEnabled:
		return onOff(seg.Enabled)
	case FieldIcon:
		return seg.Icon.Resolve(mode)
	case FieldIconColor:
		return colorLabel(seg.Colors.Icon)
	case FieldTextColor:
		return colorLabel(seg.Colors.Text)
	case FieldBackground:
		return colorLabel(seg.Colors.Background)
	case FieldBold:
		return onOff(seg.Styles.TextBold)
	}
	return ""
}

func colorLabel(c *style.Color) string {
	if c == nil {
		return "none"
	}
	return c.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m Model) renderOverlay() string {
	w := max(m.width-4, 10)
	h := max(m.height-14, 2)

	switch {
	case m.colors.IsOpen():
		return m.colors.View(w, h)
	case m.icons.IsOpen():
		return m.icons.View(w, h)
	case m.separator.IsOpen():
		return m.separator.View()
	case m.name.IsOpen():
		return m.name.View()
	}
	return ""
}
