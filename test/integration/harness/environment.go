package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Identity used for every commit made by the binary under test
const (
	AuthorEmail = "corrector01@example.org"
	AuthorName  = "Corrector One"
)

// TestEnvironment provides an isolated test environment with its own SETSYNC_HOME.
type TestEnvironment struct {
	SetsyncHome string
	// WorkDir is the directory commands run in
	WorkDir string
	tb      testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SETSYNC_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		SetsyncHome: tb.TempDir(),
		WorkDir:     tb.TempDir(),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SETSYNC_* variables and sets:
//   - SETSYNC_HOME to the temp directory
//   - SETSYNC_DEBUG to empty string (disables debug logging)
//   - SETSYNC_NO_INPUT so no prompt can block
//   - the commit identity
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+5)

	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "SETSYNC_") || strings.HasPrefix(key, "GIT_") {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SETSYNC_HOME="+e.SetsyncHome,
		"SETSYNC_DEBUG=",
		"SETSYNC_NO_INPUT=1",
		"SETSYNC_AUTHOR_NAME="+AuthorName,
		"SETSYNC_AUTHOR_EMAIL="+AuthorEmail,
	)

	return env
}

// SettingsPath returns the path settings.json is read from.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.SetsyncHome, "settings.json")
}

// WriteSettings writes raw JSON to settings.json.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(json), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

