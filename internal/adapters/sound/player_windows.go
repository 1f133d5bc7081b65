//go:build windows

package sound

import "github.com/udaan-tools/setsync/internal/ports"

// candidatesFor uses PowerShell system sounds
func candidatesFor(eventType string) []command {
	var sound string
	switch eventType {
	case ports.SoundEventConflict:
		sound = "[System.Media.SystemSounds]::Exclamation.Play()"
	case ports.SoundEventFailed:
		sound = "[System.Media.SystemSounds]::Hand.Play()"
	case ports.SoundEventSynced:
		sound = "[System.Media.SystemSounds]::Asterisk.Play()"
	default:
		sound = "[System.Media.SystemSounds]::Beep.Play()"
	}
	return []command{{"powershell", []string{"-c", sound}}}
}
