package segment

import (
	"strconv"
	"strings"

	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/model"
)

// GitCollector shows branch, working tree status and upstream divergence.
// A GitPreview in the context is used as-is; otherwise Runner is queried
// synchronously.
type GitCollector struct {
	Runner git.CommandRunner
}

func (GitCollector) ID() model.SegmentID { return model.SegmentGit }

func (c GitCollector) Collect(ctx Context) (Data, bool) {
	if ctx.GitPreview != nil {
		return gitData(*ctx.GitPreview)
	}
	if c.Runner == nil || ctx.Cwd == "" {
		return Data{}, false
	}
	preview, ok := PreviewGit(c.Runner, ctx.Cwd)
	if !ok {
		return Data{}, false
	}
	return gitData(preview)
}

func (GitCollector) sealed() {}

// PreviewGit queries the repository at dir. It reports false when dir is not
// inside a repository.
func PreviewGit(runner git.CommandRunner, dir string) (GitPreview, bool) {
	info, err := git.GetInfo(runner, dir)
	if err != nil {
		return GitPreview{}, false
	}
	return GitPreview{
		Branch: info.Branch,
		Status: info.Status.Symbol(),
		Ahead:  info.Ahead,
		Behind: info.Behind,
	}, true
}

func gitData(p GitPreview) (Data, bool) {
	if p.Branch == "" && p.Status == "" {
		return Data{}, false
	}

	var parts []string
	if p.Status != "" {
		parts = append(parts, p.Status)
	}
	if p.Ahead > 0 {
		parts = append(parts, "↑"+strconv.Itoa(p.Ahead))
	}
	if p.Behind > 0 {
		parts = append(parts, "↓"+strconv.Itoa(p.Behind))
	}

	return NewData(p.Branch).
		WithSecondary(strings.Join(parts, " ")).
		WithMetadata("branch", p.Branch).
		WithMetadata("status", p.Status).
		WithMetadata("ahead", strconv.Itoa(p.Ahead)).
		WithMetadata("behind", strconv.Itoa(p.Behind)), true
}
