package model

import (
	"testing"

	"github.com/mikanfactory/cxline/internal/style"
)

func TestSegmentIDText(t *testing.T) {
	for _, id := range SegmentOrder {
		text, err := id.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", id, err)
		}
		var parsed SegmentID
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if parsed != id {
			t.Errorf("round trip of %s = %s", id, parsed)
		}
	}

	if _, err := ParseSegmentID("weather"); err == nil {
		t.Error("expected error for unknown segment")
	}
}

func TestSegmentOrder(t *testing.T) {
	want := []string{"model", "directory", "git", "context", "usage"}
	if len(SegmentOrder) != len(want) {
		t.Fatalf("len(SegmentOrder) = %d, want %d", len(SegmentOrder), len(want))
	}
	for i, id := range SegmentOrder {
		if id.String() != want[i] {
			t.Errorf("SegmentOrder[%d] = %s, want %s", i, id, want[i])
		}
	}
}

func TestSegmentMutEditsConfig(t *testing.T) {
	var cfg Config
	for _, id := range SegmentOrder {
		seg := cfg.SegmentMut(id)
		seg.ID = id
		seg.Enabled = id == SegmentGit
	}

	for _, id := range SegmentOrder {
		got := cfg.Segment(id)
		if got.ID != id {
			t.Errorf("Segment(%s).ID = %s", id, got.ID)
		}
		if got.Enabled != (id == SegmentGit) {
			t.Errorf("Segment(%s).Enabled = %v", id, got.Enabled)
		}
	}
}

func TestConfigCloneIsDeep(t *testing.T) {
	var cfg Config
	cfg.Segments.Usage.Colors = style.NewColorConfig(style.C16(1), style.C16(2))
	cfg.Segments.Usage.Options = map[string]any{"k": "v"}

	clone := cfg.Clone()
	*clone.Segments.Usage.Colors.Text = style.C256(9)
	clone.Segments.Usage.Options["k"] = "changed"

	if *cfg.Segments.Usage.Colors.Text != style.C16(2) {
		t.Errorf("original text color = %v, want unchanged", *cfg.Segments.Usage.Colors.Text)
	}
	if cfg.Segments.Usage.Options["k"] != "v" {
		t.Errorf("original option = %v, want %q", cfg.Segments.Usage.Options["k"], "v")
	}
}
