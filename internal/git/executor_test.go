package git

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestOSCommandRunner_GitVersion(t *testing.T) {
	runner := OSCommandRunner{}
	out, err := runner.Run(".", "--version")
	if err != nil {
		t.Fatalf("git --version failed: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty output from git --version")
	}
}

func TestOSCommandRunner_ReportsStderr(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := OSCommandRunner{}.Run(dir, "rev-parse", "--git-dir")
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	msg := err.Error()
	if !strings.Contains(msg, "not a git repository") {
		t.Errorf("error = %q, want git's stderr", msg)
	}
	if strings.HasSuffix(msg, "\n") {
		t.Errorf("error = %q, want trimmed stderr", msg)
	}
}

func TestFakeCommandRunner_ReturnsOutput(t *testing.T) {
	runner := FakeCommandRunner{
		Outputs: map[string]string{
			"/repo:[branch --show-current]": "main\n",
		},
	}

	out, err := runner.Run("/repo", "branch", "--show-current")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "main\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFakeCommandRunner_ReturnsError(t *testing.T) {
	runner := FakeCommandRunner{
		Errors: map[string]error{
			"/repo:[status --porcelain]": fmt.Errorf("git failed"),
		},
	}

	_, err := runner.Run("/repo", "status", "--porcelain")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFakeCommandRunner_NoOutput(t *testing.T) {
	runner := FakeCommandRunner{
		Outputs: map[string]string{},
	}

	_, err := runner.Run("/repo", "unknown")
	if err == nil {
		t.Fatal("expected error for missing key, got nil")
	}
}

func TestFakeCommandRunner_Key(t *testing.T) {
	runner := FakeCommandRunner{}
	got := runner.Key("/repo", "--no-optional-locks", "status", "--porcelain")
	want := "/repo:[--no-optional-locks status --porcelain]"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}
