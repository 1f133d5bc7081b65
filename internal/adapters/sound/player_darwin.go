//go:build darwin

package sound

import "github.com/udaan-tools/setsync/internal/ports"

// candidatesFor uses afplay with the system sounds
func candidatesFor(eventType string) []command {
	var files []string
	switch eventType {
	case ports.SoundEventConflict:
		files = []string{"/System/Library/Sounds/Sosumi.aiff", "/System/Library/Sounds/Basso.aiff"}
	case ports.SoundEventFailed:
		files = []string{"/System/Library/Sounds/Basso.aiff"}
	case ports.SoundEventSynced:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	cmds := make([]command, 0, len(files))
	for _, f := range files {
		cmds = append(cmds, command{"afplay", []string{f}})
	}
	return cmds
}
