package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRenderContextRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		wantSet     bool
		wantPercent float64
		wantResets  string
	}{
		{
			name:        "stdin only",
			stdin:       `{"cwd":"/src","rate_limit":{"percent":40,"resets_at":"2026-01-01T10:00:00Z"}}`,
			args:        []string{"--stdin"},
			wantSet:     true,
			wantPercent: 40,
			wantResets:  "2026-01-01T10:00:00Z",
		},
		{
			name:        "resets-at overrides stdin",
			stdin:       `{"cwd":"/src","rate_limit":{"percent":40,"resets_at":"2026-01-01T10:00:00Z"}}`,
			args:        []string{"--stdin", "--resets-at", "2026-01-01T12:00:00Z"},
			wantSet:     true,
			wantPercent: 40,
			wantResets:  "2026-01-01T12:00:00Z",
		},
		{
			name:        "usage keeps stdin reset time",
			stdin:       `{"cwd":"/src","rate_limit":{"percent":40,"resets_at":"2026-01-01T10:00:00Z"}}`,
			args:        []string{"--stdin", "--usage", "75"},
			wantSet:     true,
			wantPercent: 75,
			wantResets:  "2026-01-01T10:00:00Z",
		},
		{
			name:    "resets-at without usage",
			args:    []string{"--cwd", "/src", "--resets-at", "2026-01-01T12:00:00Z"},
			wantSet: false,
		},
		{
			name:        "usage and resets-at",
			args:        []string{"--cwd", "/src", "--usage", "12", "--resets-at", "2026-01-01T12:00:00Z"},
			wantSet:     true,
			wantPercent: 12,
			wantResets:  "2026-01-01T12:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &renderOptions{}
			cmd := &cobra.Command{Use: "render"}
			addRenderFlags(cmd, opts)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}

			a := &app{stdin: strings.NewReader(tt.stdin)}
			ctx, err := a.renderContext(cmd, opts)
			if err != nil {
				t.Fatalf("renderContext: %v", err)
			}

			if !tt.wantSet {
				if ctx.RateLimitPercent != nil {
					t.Errorf("RateLimitPercent = %v, want nil", *ctx.RateLimitPercent)
				}
				return
			}
			if ctx.RateLimitPercent == nil || *ctx.RateLimitPercent != tt.wantPercent {
				t.Errorf("RateLimitPercent = %v, want %v", ctx.RateLimitPercent, tt.wantPercent)
			}
			if ctx.RateLimitResetsAt != tt.wantResets {
				t.Errorf("RateLimitResetsAt = %q, want %q", ctx.RateLimitResetsAt, tt.wantResets)
			}
		})
	}
}
