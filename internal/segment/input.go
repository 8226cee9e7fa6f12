package segment

import (
	"encoding/json"
	"fmt"
	"io"
)

type contextInput struct {
	Model   string `json:"model"`
	Cwd     string `json:"cwd"`
	Context *struct {
		UsedTokens *int64 `json:"used_tokens"`
		WindowSize *int64 `json:"window_size"`
	} `json:"context"`
	RateLimit *struct {
		Percent  *float64 `json:"percent"`
		ResetsAt string   `json:"resets_at"`
	} `json:"rate_limit"`
	Git *struct {
		Branch string `json:"branch"`
		Status string `json:"status"`
		Ahead  int    `json:"ahead"`
		Behind int    `json:"behind"`
	} `json:"git"`
}

// DecodeContext reads a render context from a JSON document such as the one
// a host pipes to "cxline render --stdin".
func DecodeContext(r io.Reader) (Context, error) {
	var in contextInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return Context{}, fmt.Errorf("decoding render context: %w", err)
	}

	ctx := NewContext(in.Model, in.Cwd)
	if in.Context != nil {
		ctx.UsedTokens = in.Context.UsedTokens
		if in.Context.WindowSize != nil && *in.Context.WindowSize > 0 {
			ctx.WindowSize = in.Context.WindowSize
		}
	}
	if in.RateLimit != nil && in.RateLimit.Percent != nil {
		ctx = ctx.WithRateLimit(*in.RateLimit.Percent, in.RateLimit.ResetsAt)
	}
	if in.Git != nil {
		ctx = ctx.WithGitPreview(GitPreview{
			Branch: in.Git.Branch,
			Status: in.Git.Status,
			Ahead:  in.Git.Ahead,
			Behind: in.Git.Behind,
		})
	}
	return ctx, nil
}
