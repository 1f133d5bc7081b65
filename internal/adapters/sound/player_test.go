package sound

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/ports"
)

func TestPlayer_StopsAtFirstWorkingCandidate(t *testing.T) {
	candidates := candidatesFor(ports.SoundEventConflict)
	if len(candidates) == 0 {
		t.Skip("no sound candidates on this platform")
	}

	var calls []string
	var bell bytes.Buffer
	p := &Player{
		bell: &bell,
		run: func(name string, args ...string) error {
			calls = append(calls, name)
			return nil
		},
	}

	require.NoError(t, p.PlaySoundForEvent(ports.SoundEventConflict))
	assert.Equal(t, []string{candidates[0].name}, calls)
	assert.Empty(t, bell.String())
}

func TestPlayer_FallsBackToBell(t *testing.T) {
	var bell bytes.Buffer
	p := &Player{
		bell: &bell,
		run: func(name string, args ...string) error {
			return errors.New("not installed")
		},
	}

	require.NoError(t, p.PlaySoundForEvent(ports.SoundEventFailed))
	assert.Equal(t, "\a", bell.String())
}
