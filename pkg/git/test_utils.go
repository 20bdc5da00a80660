package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository with one commit on main.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	dir := SetupEmptyRepo(t)
	CommitFile(t, dir, "README.md", "# Test Repository\n")
	return dir
}

// SetupEmptyRepo creates a temporary git repository without commits, HEAD on main.
func SetupEmptyRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	InitTestRepoAt(t, dir)
	return dir
}

// InitTestRepoAt initializes a git repository without commits in dir, creating dir if needed.
func InitTestRepoAt(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	RunGit(t, dir, "init", "--initial-branch=main")
	configureGitUser(t, dir)
}

// SetupBareRepo creates a temporary bare repository to push to.
func SetupBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	RunGit(t, dir, "init", "--bare", "--initial-branch=main")
	return dir
}

// CommitFile writes content to name inside dir and commits it.
func CommitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	RunGit(t, dir, "add", name)
	RunGit(t, dir, "commit", "-m", "Add "+name)
}

// RunGit runs git in dir and returns its trimmed standard output.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed in %s: %v\n%s", strings.Join(args, " "), dir, err, out)
	}
	return strings.TrimSpace(string(out))
}

func configureGitUser(t *testing.T, dir string) {
	t.Helper()
	RunGit(t, dir, "config", "user.name", "Test User")
	RunGit(t, dir, "config", "user.email", "test@example.com")
	RunGit(t, dir, "config", "commit.gpgsign", "false")
}
