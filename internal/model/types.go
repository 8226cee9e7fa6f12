package model

import (
	"fmt"
	"maps"

	"github.com/mikanfactory/cxline/internal/style"
)

// SegmentID identifies one of the fixed status line segments.
type SegmentID int

const (
	SegmentModel SegmentID = iota
	SegmentDirectory
	SegmentGit
	SegmentContext
	SegmentUsage
)

// SegmentOrder is the order segments appear in the rendered line.
var SegmentOrder = []SegmentID{
	SegmentModel,
	SegmentDirectory,
	SegmentGit,
	SegmentContext,
	SegmentUsage,
}

var segmentNames = [...]string{
	SegmentModel:     "model",
	SegmentDirectory: "directory",
	SegmentGit:       "git",
	SegmentContext:   "context",
	SegmentUsage:     "usage",
}

func (id SegmentID) String() string {
	if id >= 0 && int(id) < len(segmentNames) {
		return segmentNames[id]
	}
	return fmt.Sprintf("segment(%d)", int(id))
}

// ParseSegmentID parses the persisted name of a segment.
func ParseSegmentID(s string) (SegmentID, error) {
	for i, name := range segmentNames {
		if name == s {
			return SegmentID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown segment %q", s)
}

func (id SegmentID) MarshalText() ([]byte, error) {
	if id < 0 || int(id) >= len(segmentNames) {
		return nil, fmt.Errorf("unknown segment %d", int(id))
	}
	return []byte(segmentNames[id]), nil
}

func (id *SegmentID) UnmarshalText(text []byte) error {
	parsed, err := ParseSegmentID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// SegmentConfig is the per-segment appearance.
type SegmentConfig struct {
	ID      SegmentID
	Enabled bool
	Icon    style.IconSet
	Colors  style.ColorConfig
	Styles  style.TextStyle
	Options map[string]any
}

// Clone returns a deep copy of c.
func (c SegmentConfig) Clone() SegmentConfig {
	c.Colors = c.Colors.Clone()
	if c.Options != nil {
		c.Options = maps.Clone(c.Options)
	}
	return c
}

// Segments holds the configuration of every segment.
type Segments struct {
	Model     SegmentConfig
	Directory SegmentConfig
	Git       SegmentConfig
	Context   SegmentConfig
	Usage     SegmentConfig
}

// Config is the resolved status line configuration.
type Config struct {
	Enabled   bool
	Theme     string
	Style     style.Mode
	Separator string
	Segments  Segments
}

// Segment returns the configuration of id.
func (c Config) Segment(id SegmentID) SegmentConfig {
	return *c.SegmentMut(id)
}

// SegmentMut returns a pointer to the configuration of id for editing.
func (c *Config) SegmentMut(id SegmentID) *SegmentConfig {
	switch id {
	case SegmentDirectory:
		return &c.Segments.Directory
	case SegmentGit:
		return &c.Segments.Git
	case SegmentContext:
		return &c.Segments.Context
	case SegmentUsage:
		return &c.Segments.Usage
	default:
		return &c.Segments.Model
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	for _, id := range SegmentOrder {
		seg := c.SegmentMut(id)
		*seg = seg.Clone()
	}
	return c
}
