package segment

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/model"
)

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		tokens int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{150000, "150.0k"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.tokens), func(t *testing.T) {
			if got := FormatTokens(tt.tokens); got != tt.want {
				t.Errorf("FormatTokens(%d) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestDynamicIcon(t *testing.T) {
	tests := []struct {
		utilization float64
		want        string
	}{
		{0.0, "\U000f0a9e"},
		{0.12, "\U000f0a9e"},
		{0.13, "\U000f0a9f"},
		{0.25, "\U000f0a9f"},
		{0.37, "\U000f0aa0"},
		{0.5, "\U000f0aa1"},
		{0.62, "\U000f0aa2"},
		{0.75, "\U000f0aa3"},
		{0.87, "\U000f0aa4"},
		{0.88, "\U000f0aa5"},
		{1.0, "\U000f0aa5"},
		{-0.3, "\U000f0a9e"},
		{4.0, "\U000f0aa5"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.utilization), func(t *testing.T) {
			if got := DynamicIcon(tt.utilization); got != tt.want {
				t.Errorf("DynamicIcon(%v) = %U, want %U", tt.utilization, []rune(got), []rune(tt.want))
			}
		})
	}

	seen := map[string]bool{}
	for _, u := range []float64{0.0, 0.5, 1.0} {
		seen[DynamicIcon(u)] = true
	}
	if len(seen) != 3 {
		t.Errorf("DynamicIcon(0, 0.5, 1) produced %d distinct glyphs, want 3", len(seen))
	}
}

func TestDirectoryName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/user/projects/codex", "codex"},
		{"/home/user", "user"},
		{"/home/user/", "user"},
		{"/", "/"},
		{"some/path", "path"},
		{"", ""},
		{".", ""},
		{"..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DirectoryName(tt.path); got != tt.want {
				t.Errorf("DirectoryName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirectoryCollector(t *testing.T) {
	data, ok := DirectoryCollector{}.Collect(NewContext("", "/home/user/projects/codex"))
	if !ok {
		t.Fatal("expected data")
	}
	if data.Primary != "codex" {
		t.Errorf("Primary = %q, want %q", data.Primary, "codex")
	}
	if data.Metadata["full_path"] != "/home/user/projects/codex" {
		t.Errorf("full_path = %q", data.Metadata["full_path"])
	}

	if _, ok := (DirectoryCollector{}).Collect(NewContext("", "")); ok {
		t.Error("expected no data for empty cwd")
	}
}

func TestModelCollector(t *testing.T) {
	data, ok := ModelCollector{}.Collect(NewContext(" gpt-5 ", "/"))
	if !ok || data.Primary != "gpt-5" {
		t.Errorf("Collect() = %q, %v, want %q, true", data.Primary, ok, "gpt-5")
	}
	if _, ok := (ModelCollector{}).Collect(NewContext("", "/")); ok {
		t.Error("expected no data for empty model name")
	}
}

func TestContextCollector(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		want     string
		wantType string
		wantUsed string
		wantPct  string
	}{
		{
			name:     "tokens and window",
			ctx:      NewContext("m", "/").WithTokens(500000, 1000000),
			want:     "50% · 500.0k tokens",
			wantType: "full",
			wantUsed: "500000",
			wantPct:  "50",
		},
		{
			name:     "percent floors",
			ctx:      NewContext("m", "/").WithTokens(1999, 10000),
			want:     "19% · 2.0k tokens",
			wantType: "full",
			wantUsed: "1999",
			wantPct:  "19",
		},
		{
			name:     "tokens only",
			ctx:      NewContext("m", "/").WithTokens(1500, 0),
			want:     "1.5k tokens",
			wantType: "tokens",
			wantUsed: "1500",
		},
		{
			name:     "nothing known",
			ctx:      NewContext("m", "/"),
			want:     "- · - tokens",
			wantType: "placeholder",
			wantUsed: "-",
			wantPct:  "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok := ContextCollector{}.Collect(tt.ctx)
			if !ok {
				t.Fatal("context segment should always produce data")
			}
			if data.Primary != tt.want {
				t.Errorf("Primary = %q, want %q", data.Primary, tt.want)
			}
			if data.Metadata["type"] != tt.wantType {
				t.Errorf("type = %q, want %q", data.Metadata["type"], tt.wantType)
			}
			if data.Metadata["tokens"] != tt.wantUsed {
				t.Errorf("tokens = %q, want %q", data.Metadata["tokens"], tt.wantUsed)
			}
			if data.Metadata["percent"] != tt.wantPct {
				t.Errorf("percent = %q, want %q", data.Metadata["percent"], tt.wantPct)
			}
		})
	}
}

func TestUsageCollector(t *testing.T) {
	now := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	c := UsageCollector{Now: func() time.Time { return now }, Location: time.UTC}

	if _, ok := c.Collect(NewContext("m", "/")); ok {
		t.Fatal("expected no data without a rate limit")
	}

	data, ok := c.Collect(NewContext("m", "/").WithRateLimit(42.4, ""))
	if !ok {
		t.Fatal("expected data")
	}
	if data.Primary != "42%" {
		t.Errorf("Primary = %q, want %q", data.Primary, "42%")
	}
	if data.Secondary != "" {
		t.Errorf("Secondary = %q, want empty", data.Secondary)
	}
	if data.Metadata["percent"] != "42.4" {
		t.Errorf("percent = %q, want %q", data.Metadata["percent"], "42.4")
	}
	if data.Metadata[MetaDynamicIcon] != DynamicIcon(0.424) {
		t.Errorf("dynamic_icon = %q, want %q", data.Metadata[MetaDynamicIcon], DynamicIcon(0.424))
	}

	data, _ = c.Collect(NewContext("m", "/").WithRateLimit(90, "2025-06-22T14:30:00Z"))
	if data.Secondary != "· 14:30" {
		t.Errorf("Secondary = %q, want %q", data.Secondary, "· 14:30")
	}
	if data.Metadata["resets_at"] != "14:30" {
		t.Errorf("resets_at = %q, want %q", data.Metadata["resets_at"], "14:30")
	}
}

func TestGitCollector_Preview(t *testing.T) {
	tests := []struct {
		name          string
		preview       GitPreview
		wantOK        bool
		wantPrimary   string
		wantSecondary string
	}{
		{
			name:          "clean",
			preview:       GitPreview{Branch: "main", Status: "✓"},
			wantOK:        true,
			wantPrimary:   "main",
			wantSecondary: "✓",
		},
		{
			name:          "ahead and behind",
			preview:       GitPreview{Branch: "dev", Status: "●", Ahead: 3, Behind: 1},
			wantOK:        true,
			wantPrimary:   "dev",
			wantSecondary: "● ↑3 ↓1",
		},
		{
			name:    "empty preview",
			preview: GitPreview{},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext("m", "/repo").WithGitPreview(tt.preview)
			data, ok := GitCollector{}.Collect(ctx)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if data.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", data.Primary, tt.wantPrimary)
			}
			if data.Secondary != tt.wantSecondary {
				t.Errorf("Secondary = %q, want %q", data.Secondary, tt.wantSecondary)
			}
		})
	}
}

func TestGitCollector_Runner(t *testing.T) {
	runner := git.FakeCommandRunner{
		Outputs: map[string]string{
			"/repo:[--no-optional-locks rev-parse --git-dir]":         ".git\n",
			"/repo:[--no-optional-locks branch --show-current]":       "main\n",
			"/repo:[--no-optional-locks status --porcelain]":          " M a.go\n",
			"/repo:[--no-optional-locks rev-list --count @{u}..HEAD]": "0\n",
			"/repo:[--no-optional-locks rev-list --count HEAD..@{u}]": "4\n",
		},
	}

	data, ok := GitCollector{Runner: runner}.Collect(NewContext("m", "/repo"))
	if !ok {
		t.Fatal("expected data")
	}
	if data.Primary != "main" {
		t.Errorf("Primary = %q, want %q", data.Primary, "main")
	}
	if data.Secondary != "● ↓4" {
		t.Errorf("Secondary = %q, want %q", data.Secondary, "● ↓4")
	}
	if data.Metadata["behind"] != "4" {
		t.Errorf("behind = %q, want %q", data.Metadata["behind"], "4")
	}

	outside := git.FakeCommandRunner{}
	if _, ok := (GitCollector{Runner: outside}).Collect(NewContext("m", "/tmp")); ok {
		t.Error("expected no data outside a repository")
	}
}

func enabledConfig(disabled ...model.SegmentID) model.Config {
	var cfg model.Config
	for _, id := range model.SegmentOrder {
		seg := cfg.SegmentMut(id)
		seg.ID = id
		seg.Enabled = true
	}
	for _, id := range disabled {
		cfg.SegmentMut(id).Enabled = false
	}
	return cfg
}

func TestCollect(t *testing.T) {
	ctx := NewContext("gpt-5", "/home/user/codex").
		WithTokens(1000, 4000).
		WithRateLimit(10, "").
		WithGitPreview(GitPreview{Branch: "main", Status: "✓"})

	tests := []struct {
		name    string
		cfg     model.Config
		ctx     Context
		wantIDs []model.SegmentID
	}{
		{
			name:    "all enabled",
			cfg:     enabledConfig(),
			ctx:     ctx,
			wantIDs: model.SegmentOrder,
		},
		{
			name:    "disabled segments skipped",
			cfg:     enabledConfig(model.SegmentGit, model.SegmentModel),
			ctx:     ctx,
			wantIDs: []model.SegmentID{model.SegmentDirectory, model.SegmentContext, model.SegmentUsage},
		},
		{
			name:    "absent data dropped",
			cfg:     enabledConfig(),
			ctx:     NewContext("", "/home/user/codex"),
			wantIDs: []model.SegmentID{model.SegmentDirectory, model.SegmentContext},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(tt.cfg, tt.ctx, Collectors(git.FakeCommandRunner{}))
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID.String())
			}
			var want []string
			for _, id := range tt.wantIDs {
				want = append(want, id.String())
			}
			if strings.Join(ids, ",") != strings.Join(want, ",") {
				t.Errorf("collected = %v, want %v", ids, want)
			}
		})
	}
}

func TestDataWithMetadataDoesNotAlias(t *testing.T) {
	base := NewData("x").WithMetadata("a", "1")
	derived := base.WithMetadata("b", "2")

	if _, ok := base.Metadata["b"]; ok {
		t.Error("WithMetadata mutated the receiver's map")
	}
	if derived.Metadata["a"] != "1" || derived.Metadata["b"] != "2" {
		t.Errorf("derived metadata = %v", derived.Metadata)
	}
}

func TestDecodeContext(t *testing.T) {
	input := `{
		"model": "gpt-5",
		"cwd": "/work/cxline",
		"context": {"used_tokens": 1500, "window_size": 0},
		"rate_limit": {"percent": 55.5, "resets_at": "45m"},
		"git": {"branch": "main", "status": "●", "ahead": 1}
	}`

	ctx, err := DecodeContext(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeContext failed: %v", err)
	}
	if ctx.ModelName != "gpt-5" || ctx.Cwd != "/work/cxline" {
		t.Errorf("model/cwd = %q/%q", ctx.ModelName, ctx.Cwd)
	}
	if ctx.UsedTokens == nil || *ctx.UsedTokens != 1500 {
		t.Errorf("UsedTokens = %v, want 1500", ctx.UsedTokens)
	}
	if ctx.WindowSize != nil {
		t.Errorf("WindowSize = %v, want nil for zero window", *ctx.WindowSize)
	}
	if ctx.RateLimitPercent == nil || *ctx.RateLimitPercent != 55.5 {
		t.Errorf("RateLimitPercent = %v, want 55.5", ctx.RateLimitPercent)
	}
	if ctx.RateLimitResetsAt != "45m" {
		t.Errorf("RateLimitResetsAt = %q, want %q", ctx.RateLimitResetsAt, "45m")
	}
	if ctx.GitPreview == nil || ctx.GitPreview.Ahead != 1 {
		t.Errorf("GitPreview = %+v", ctx.GitPreview)
	}

	if _, err := DecodeContext(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
