package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts git invocation so collectors can be tested
// without a repository on disk.
type CommandRunner interface {
	Run(dir string, args ...string) (string, error)
}

// OSCommandRunner runs the git binary found on PATH inside dir. A non-zero
// exit is reported with git's trimmed stderr.
type OSCommandRunner struct{}

func (r OSCommandRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %v failed: %s", args, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %v failed: %w", args, err)
	}
	return string(out), nil
}

// FakeCommandRunner is a test double that returns preset output keyed by
// "dir:[args]".
type FakeCommandRunner struct {
	Outputs map[string]string
	Errors  map[string]error
}

// Key builds the lookup key used by Run.
func (r FakeCommandRunner) Key(dir string, args ...string) string {
	return fmt.Sprintf("%s:%v", dir, args)
}

func (r FakeCommandRunner) Run(dir string, args ...string) (string, error) {
	key := r.Key(dir, args...)
	if err, ok := r.Errors[key]; ok {
		return "", err
	}
	if out, ok := r.Outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("FakeCommandRunner: no output for key %q", key)
}
