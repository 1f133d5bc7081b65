package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through ldflags
const BuildVersion = "v0.0.0-integration"

const commandTimeout = 60 * time.Second

var binary struct {
	once sync.Once
	path string
	err  error
}

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd once per test run. Call it from TestMain.
func BuildBinary() (string, error) {
	binary.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			binary.err = err
			return
		}
		dir, err := os.MkdirTemp("", "setsync-integration-*")
		if err != nil {
			binary.err = err
			return
		}
		binary.path = filepath.Join(dir, "setsync")

		build := exec.Command("go", "build",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", binary.path, "./cmd")
		build.Dir = root
		if out, err := build.CombinedOutput(); err != nil {
			binary.err = fmt.Errorf("go build failed: %w\n%s", err, out)
		}
	})
	return binary.path, binary.err
}

// CleanupBinary removes the compiled binary. Call it from TestMain.
func CleanupBinary() {
	if binary.path != "" {
		os.RemoveAll(filepath.Dir(binary.path))
	}
}

// RunCommand runs setsync with args in the environment's working directory.
// A command that outlives commandTimeout reports exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary.path, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = env.Environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{ExitCode: 0}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("setsync %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("setsync %v could not run: %v", args, err)
		result.ExitCode = -1
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot asks the go tool for the directory holding go.mod
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", err
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", errors.New("not inside a Go module")
	}
	return filepath.Dir(gomod), nil
}
