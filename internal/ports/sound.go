package ports

// Sound events
const (
	SoundEventConflict = "conflict"
	SoundEventFailed   = "failed"
	SoundEventSynced   = "synced"
)

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySoundForEvent plays a sound for a specific event type
	PlaySoundForEvent(eventType string) error
}
