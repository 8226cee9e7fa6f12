package git

import (
	"fmt"
	"strconv"
	"strings"
)

// Status summarizes the working tree.
type Status int

const (
	StatusClean Status = iota
	StatusDirty
	StatusConflicts
)

// Symbol returns the glyph shown for s in the status line.
func (s Status) Symbol() string {
	switch s {
	case StatusDirty:
		return "●"
	case StatusConflicts:
		return "⚠"
	default:
		return "✓"
	}
}

// Info is the repository state shown by the git segment.
type Info struct {
	Branch string
	Status Status
	Ahead  int
	Behind int
}

// base is prepended to every query; status reads never take optional locks.
var base = []string{"--no-optional-locks"}

func run(runner CommandRunner, dir string, args ...string) (string, error) {
	out, err := runner.Run(dir, append(append([]string{}, base...), args...)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepository reports whether dir is inside a git work tree.
func IsRepository(runner CommandRunner, dir string) bool {
	_, err := run(runner, dir, "rev-parse", "--git-dir")
	return err == nil
}

// GetInfo collects branch, working tree status and upstream divergence for
// dir. It returns an error when dir is not inside a repository. Missing
// upstreams count as zero divergence.
func GetInfo(runner CommandRunner, dir string) (Info, error) {
	if !IsRepository(runner, dir) {
		return Info{}, fmt.Errorf("%s is not a git repository", dir)
	}

	info := Info{Branch: currentBranch(runner, dir)}

	porcelain, err := runner.Run(dir, append(append([]string{}, base...), "status", "--porcelain")...)
	if err != nil {
		return Info{}, fmt.Errorf("reading status: %w", err)
	}
	info.Status = parseStatusPorcelain(porcelain)

	info.Ahead = countRevs(runner, dir, "@{u}..HEAD")
	info.Behind = countRevs(runner, dir, "HEAD..@{u}")

	return info, nil
}

func currentBranch(runner CommandRunner, dir string) string {
	if out, err := run(runner, dir, "branch", "--show-current"); err == nil && out != "" {
		return out
	}
	if out, err := run(runner, dir, "symbolic-ref", "--short", "HEAD"); err == nil && out != "" {
		return out
	}
	return "detached"
}

func countRevs(runner CommandRunner, dir, rng string) int {
	out, err := run(runner, dir, "rev-list", "--count", rng)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0
	}
	return n
}

var unmerged = map[string]bool{
	"UU": true, "AA": true, "DD": true,
	"AU": true, "UA": true, "DU": true, "UD": true,
}

func parseStatusPorcelain(output string) Status {
	if strings.TrimSpace(output) == "" {
		return StatusClean
	}

	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if len(line) < 2 {
			continue
		}
		if unmerged[line[:2]] {
			return StatusConflicts
		}
	}

	return StatusDirty
}
