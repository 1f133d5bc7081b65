// Package harness provides utilities for integration testing the setsync CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SETSYNC_HOME: Isolated per test (temp directory)
//   - SETSYNC_DEBUG: Disabled to reduce noise
//   - SETSYNC_NO_INPUT: Set to prevent interactive prompts
//   - SETSYNC_AUTHOR_NAME, SETSYNC_AUTHOR_EMAIL: commit identity
package harness
