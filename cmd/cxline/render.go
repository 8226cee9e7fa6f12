package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/render"
	"github.com/mikanfactory/cxline/internal/segment"
	"github.com/mikanfactory/cxline/internal/settings"
)

type renderOptions struct {
	model    string
	cwd      string
	tokens   int64
	window   int64
	usage    float64
	resetsAt string
	stdin    bool
	noColor  bool
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.model, "model", "", "model name")
	f.StringVar(&opts.cwd, "cwd", "", "working directory (default: current directory)")
	f.Int64Var(&opts.tokens, "tokens", 0, "tokens used in the context window")
	f.Int64Var(&opts.window, "window", 0, "context window size in tokens")
	f.Float64Var(&opts.usage, "usage", 0, "rate-limit usage percentage (0-100)")
	f.StringVar(&opts.resetsAt, "resets-at", "", "rate-limit reset time (RFC 3339)")
	f.BoolVar(&opts.stdin, "stdin", false, "read the render context as JSON from stdin")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	f.Int(settings.KeyWidth, 0, "maximum line width (default: terminal width)")
	f.String(settings.KeyColor, "auto", "color output: auto, always or never")
	f.String(settings.KeyTheme, "", "render with this theme instead of the saved one")
	f.String(settings.KeyStyle, "", "render with this style: plain, nerd_font or powerline")
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the status line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts)
		},
	}
	addRenderFlags(cmd, opts)
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, opts *renderOptions) error {
	manager := a.manager()
	cfg := manager.Load()
	manager.ApplyOverrides(&cfg, a.settings.Overrides())

	ctx, err := a.renderContext(cmd, opts)
	if err != nil {
		return err
	}

	collected := segment.Collect(cfg, ctx, segment.Collectors(git.OSCommandRunner{}))
	line := render.BuildLine(cfg, collected)

	if width := a.lineWidth(); width > 0 {
		line = line.Truncate(width)
	}

	choice := a.settings.Color
	if opts.noColor {
		choice = render.ColorNever
	}
	a.logger.Debug("rendered", "segments", len(collected), "width", line.Width())
	_, err = fmt.Fprintln(a.stdout, line.Render(render.NewRenderer(a.stdout, choice)))
	return err
}

// renderContext builds the context from stdin JSON, then applies any flag
// that was set explicitly.
func (a *app) renderContext(cmd *cobra.Command, opts *renderOptions) (segment.Context, error) {
	var ctx segment.Context
	if opts.stdin {
		decoded, err := segment.DecodeContext(a.stdin)
		if err != nil {
			return segment.Context{}, err
		}
		ctx = decoded
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		ctx.ModelName = opts.model
	}
	if flags.Changed("cwd") {
		ctx.Cwd = opts.cwd
	}
	if ctx.Cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return segment.Context{}, fmt.Errorf("determining working directory: %w", err)
		}
		ctx.Cwd = wd
	}
	if flags.Changed("tokens") || flags.Changed("window") {
		ctx = ctx.WithTokens(opts.tokens, opts.window)
	}
	if flags.Changed("usage") || (flags.Changed("resets-at") && ctx.RateLimitPercent != nil) {
		percent, resetsAt := opts.usage, ctx.RateLimitResetsAt
		if !flags.Changed("usage") {
			percent = *ctx.RateLimitPercent
		}
		if flags.Changed("resets-at") {
			resetsAt = opts.resetsAt
		}
		ctx = ctx.WithRateLimit(percent, resetsAt)
	}
	return ctx, nil
}

// lineWidth returns the configured width, or the terminal width when stdout
// is a terminal. Zero means unlimited.
func (a *app) lineWidth() int {
	if a.settings.Width > 0 {
		return a.settings.Width
	}
	f, ok := a.stdout.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		a.logger.Debug("reading terminal size", "error", err)
		return 0
	}
	return width
}
