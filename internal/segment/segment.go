// Package segment produces the per-render data shown by each status line
// segment.
package segment

import (
	"maps"

	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/model"
)

// Metadata keys shared with the renderer.
const (
	MetaDynamicIcon = "dynamic_icon"
)

// Data is the text a segment contributes to one render.
type Data struct {
	Primary   string
	Secondary string
	Metadata  map[string]string
}

// NewData returns Data with the given primary text.
func NewData(primary string) Data {
	return Data{Primary: primary, Metadata: map[string]string{}}
}

// WithSecondary returns a copy of d with the secondary text set.
func (d Data) WithSecondary(s string) Data {
	d.Secondary = s
	return d
}

// WithMetadata returns a copy of d with key set to value.
func (d Data) WithMetadata(key, value string) Data {
	m := maps.Clone(d.Metadata)
	if m == nil {
		m = map[string]string{}
	}
	m[key] = value
	d.Metadata = m
	return d
}

// GitPreview is repository state computed ahead of the render.
type GitPreview struct {
	Branch string
	Status string
	Ahead  int
	Behind int
}

// Context is the runtime input of a render.
type Context struct {
	ModelName         string
	Cwd               string
	UsedTokens        *int64
	WindowSize        *int64
	RateLimitPercent  *float64
	RateLimitResetsAt string
	GitPreview        *GitPreview
}

// NewContext returns a Context for a model running in cwd.
func NewContext(modelName, cwd string) Context {
	return Context{ModelName: modelName, Cwd: cwd}
}

// WithTokens sets the context window usage. A window of zero or less is
// treated as unknown.
func (c Context) WithTokens(used, window int64) Context {
	c.UsedTokens = &used
	if window > 0 {
		c.WindowSize = &window
	} else {
		c.WindowSize = nil
	}
	return c
}

// WithRateLimit sets the rate-limit percentage (0..100) and reset text.
func (c Context) WithRateLimit(percent float64, resetsAt string) Context {
	c.RateLimitPercent = &percent
	c.RateLimitResetsAt = resetsAt
	return c
}

// WithGitPreview sets precomputed repository state.
func (c Context) WithGitPreview(p GitPreview) Context {
	c.GitPreview = &p
	return c
}

// Collector produces the data of one segment. The set of implementations is
// closed: every collector lives in this package.
type Collector interface {
	ID() model.SegmentID
	Collect(ctx Context) (Data, bool)
	sealed()
}

// Collectors returns one collector per segment in render order.
func Collectors(runner git.CommandRunner) []Collector {
	return []Collector{
		ModelCollector{},
		DirectoryCollector{},
		GitCollector{Runner: runner},
		ContextCollector{},
		UsageCollector{},
	}
}

// Collected pairs a segment with the data it produced.
type Collected struct {
	ID   model.SegmentID
	Data Data
}

// Collect runs each collector whose segment is enabled and keeps the ones
// that produced data, preserving collector order.
func Collect(cfg model.Config, ctx Context, collectors []Collector) []Collected {
	var out []Collected
	for _, c := range collectors {
		if !cfg.Segment(c.ID()).Enabled {
			continue
		}
		data, ok := c.Collect(ctx)
		if !ok {
			continue
		}
		out = append(out, Collected{ID: c.ID(), Data: data})
	}
	return out
}
