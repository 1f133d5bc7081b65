package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// command is one way of producing a sound on this platform
type command struct {
	name string
	args []string
}

// Player implements ports.SoundPlayer
type Player struct {
	bell io.Writer
	run  func(name string, args ...string) error
}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{
		bell: os.Stderr,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// PlaySoundForEvent plays a platform sound for the event, falling back to
// the terminal bell when no player is available.
// Platform-specific candidates are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	for _, c := range candidatesFor(eventType) {
		if err := p.run(c.name, c.args...); err == nil {
			return nil
		}
	}
	logging.Logger.Debug("No sound player available, ringing bell", "event", eventType)
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
