package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
	"github.com/udaan-tools/setsync/internal/theme"
)

const conflictTitle = "Merge conflict"

// Notifier implements ports.Notifier. Conflicts are printed, announced with
// a sound and, on a terminal, held until the user acknowledges them.
type Notifier struct {
	interactive bool
	out         io.Writer
	sound       ports.SoundPlayer
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a new Notifier; sound may be nil
func NewNotifier(out io.Writer, sound ports.SoundPlayer, interactive bool) *Notifier {
	return &Notifier{interactive: interactive, out: out, sound: sound}
}

// NotifyConflict reports the conflicted paths and blocks until acknowledged
func (n *Notifier) NotifyConflict(ctx context.Context, conflictedPaths []string) error {
	if n.sound != nil {
		if err := n.sound.PlaySoundForEvent(ports.SoundEventConflict); err != nil {
			logging.Logger.Debug("Failed to play conflict sound", "error", err)
		}
	}

	fmt.Fprintln(n.out, RenderConflict(conflictedPaths))

	if !n.interactive {
		return nil
	}
	return acknowledge(ctx, conflictTitle, "Resolve the conflicted files, commit them, then sync again.")
}

// RenderConflict formats the conflict notice
func RenderConflict(conflictedPaths []string) string {
	var b strings.Builder
	b.WriteString(theme.ConflictStyle.Render("CONFLICT (content)"))
	b.WriteString("\n")
	b.WriteString("The remote changes could not be merged automatically.\n")
	if len(conflictedPaths) > 0 {
		b.WriteString("\n")
		for _, p := range conflictedPaths {
			b.WriteString("  ")
			b.WriteString(theme.ValueStyle.Render(p))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render("Nothing was committed or pushed."))
	return theme.NoticeBoxStyle.Render(b.String())
}
