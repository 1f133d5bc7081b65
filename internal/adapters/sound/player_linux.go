//go:build linux

package sound

import "github.com/udaan-tools/setsync/internal/ports"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// candidatesFor uses paplay (PulseAudio) or aplay (ALSA)
func candidatesFor(eventType string) []command {
	var name string
	switch eventType {
	case ports.SoundEventConflict:
		name = "dialog-warning"
	case ports.SoundEventFailed:
		name = "dialog-error"
	case ports.SoundEventSynced:
		name = "complete"
	default:
		name = "bell"
	}
	return []command{
		{"paplay", []string{freedesktopSounds + name + ".oga"}},
		{"aplay", []string{freedesktopSounds + name + ".wav"}},
	}
}
