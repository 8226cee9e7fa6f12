package segment

import (
	"fmt"
	"math"
	"time"

	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/timeparse"
)

// UsageCollector shows the rate-limit percentage with a gauge icon that
// tracks utilization.
type UsageCollector struct {
	// Now and Location control how reset timestamps are displayed. Zero
	// values use the wall clock and the local zone.
	Now      func() time.Time
	Location *time.Location
}

func (UsageCollector) ID() model.SegmentID { return model.SegmentUsage }

func (c UsageCollector) Collect(ctx Context) (Data, bool) {
	if ctx.RateLimitPercent == nil {
		return Data{}, false
	}
	percent := *ctx.RateLimitPercent

	data := NewData(fmt.Sprintf("%.0f%%", percent)).
		WithMetadata("percent", fmt.Sprintf("%.1f", percent)).
		WithMetadata(MetaDynamicIcon, DynamicIcon(percent/100))

	if ctx.RateLimitResetsAt != "" {
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		resets := timeparse.FormatResetsAt(ctx.RateLimitResetsAt, now(), c.Location)
		data = data.WithSecondary("· "+resets).WithMetadata("resets_at", resets)
	}

	return data, true
}

func (UsageCollector) sealed() {}

var gaugeIcons = [...]string{
	"\U000f0a9e",
	"\U000f0a9f",
	"\U000f0aa0",
	"\U000f0aa1",
	"\U000f0aa2",
	"\U000f0aa3",
	"\U000f0aa4",
	"\U000f0aa5",
}

// DynamicIcon returns the gauge glyph for a utilization in [0, 1]. Values
// outside the range saturate.
func DynamicIcon(utilization float64) string {
	v := utilization * 100
	var p int
	switch {
	case math.IsNaN(v) || v <= 0:
		p = 0
	case v >= 255:
		p = 255
	default:
		p = int(v)
	}

	switch {
	case p <= 12:
		return gaugeIcons[0]
	case p <= 25:
		return gaugeIcons[1]
	case p <= 37:
		return gaugeIcons[2]
	case p <= 50:
		return gaugeIcons[3]
	case p <= 62:
		return gaugeIcons[4]
	case p <= 75:
		return gaugeIcons[5]
	case p <= 87:
		return gaugeIcons[6]
	default:
		return gaugeIcons[7]
	}
}
