package segment

import (
	"fmt"
	"strconv"

	"github.com/mikanfactory/cxline/internal/model"
)

// PlaceholderContext is shown when no token counts are known.
const PlaceholderContext = "- · - tokens"

// ContextCollector shows context window usage. It always produces data,
// falling back to a placeholder.
type ContextCollector struct{}

func (ContextCollector) ID() model.SegmentID { return model.SegmentContext }

func (ContextCollector) Collect(ctx Context) (Data, bool) {
	switch {
	case ctx.UsedTokens != nil && ctx.WindowSize != nil && *ctx.WindowSize > 0:
		used := *ctx.UsedTokens
		percent := int64(float64(used) / float64(*ctx.WindowSize) * 100)
		tokens := FormatTokens(used)
		return NewData(fmt.Sprintf("%d%% · %s tokens", percent, tokens)).
			WithMetadata("percent", strconv.FormatInt(percent, 10)).
			WithMetadata("tokens", strconv.FormatInt(used, 10)).
			WithMetadata("type", "full"), true

	case ctx.UsedTokens != nil:
		used := *ctx.UsedTokens
		return NewData(FormatTokens(used)+" tokens").
			WithMetadata("tokens", strconv.FormatInt(used, 10)).
			WithMetadata("type", "tokens"), true

	default:
		return NewData(PlaceholderContext).
			WithMetadata("percent", "-").
			WithMetadata("tokens", "-").
			WithMetadata("type", "placeholder"), true
	}
}

func (ContextCollector) sealed() {}

// FormatTokens renders a token count as "500", "1.5k" or "1.5M".
func FormatTokens(tokens int64) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%.1fk", float64(tokens)/1_000)
	default:
		return strconv.FormatInt(tokens, 10)
	}
}
