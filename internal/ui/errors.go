package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	truncationMark = "..."
)

// formatErrorForDisplay wraps err to maxWidth and keeps at most
// maxErrorLines lines, marking truncation with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	wrapped := lipgloss.NewStyle().Width(maxWidth).Render(errorPrefix + message)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := []rune(lines[maxErrorLines-1])
	if len(last)+len(truncationMark) > maxWidth {
		last = last[:maxWidth-len(truncationMark)]
	}
	lines[maxErrorLines-1] = string(last) + truncationMark
	return strings.Join(lines, "\n")
}
