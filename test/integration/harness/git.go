package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a shared set: a bare repo standing in for
// the hosted remote and a first working copy with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working copy with origin configured
	baseDir      string
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates the hosted remote)
//  2. Clones it to create a working copy with origin remote
//  3. Creates an initial commit on main and pushes it
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", "--initial-branch=main", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	WriteFile(tb, clonePath, "CorrectorOutput/page1.html", "<p>page one</p>\n")
	WriteFile(tb, clonePath, "VerifierOutput/page1.html", "<p>page one</p>\n")
	runGitCommand(tb, clonePath, "add", "-A")
	runGitCommand(tb, clonePath, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		baseDir:      baseDir,
		tb:           tb,
	}
}

// AddClone creates another working copy of origin, as a second team member would have.
func (g *TestGitSetup) AddClone(name string) string {
	g.tb.Helper()

	path := filepath.Join(g.baseDir, name)
	runGitCommand(g.tb, g.baseDir, "clone", g.BareRepoPath, path)
	runGitCommand(g.tb, path, "config", "user.email", "test@example.com")
	runGitCommand(g.tb, path, "config", "user.name", "Test User")
	return path
}

// CommitFile writes a file in dir and commits it with git directly.
func (g *TestGitSetup) CommitFile(dir, name, content, message string) {
	g.tb.Helper()
	WriteFile(g.tb, dir, name, content)
	runGitCommand(g.tb, dir, "add", "-A")
	runGitCommand(g.tb, dir, "commit", "-m", message)
}

// RemoteHead returns the commit id of main on origin.
func (g *TestGitSetup) RemoteHead() string {
	g.tb.Helper()
	return GitOutput(g.tb, g.BareRepoPath, "rev-parse", "refs/heads/main")
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(tb testing.TB, dir, name, content string) {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// GitOutput runs a git command and returns its trimmed stdout.
func GitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()
	cmd := gitCommand(dir, args...)
	out, err := cmd.Output()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v", args, dir, err)
	}
	return strings.TrimSpace(string(out))
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	output, err := gitCommand(dir, args...).CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}

func gitCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	return cmd
}
