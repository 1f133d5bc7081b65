package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ports"
	"github.com/udaan-tools/setsync/internal/ports/mocks"
)

func TestNotifier_NotifyConflict(t *testing.T) {
	sound := mocks.NewMockSoundPlayer(t)
	sound.EXPECT().PlaySoundForEvent(ports.SoundEventConflict).Return(nil).Once()

	var out bytes.Buffer
	n := NewNotifier(&out, sound, false)

	err := n.NotifyConflict(context.Background(), []string{"CorrectorOutput/page1.html", "CorrectorOutput/page7.html"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "CONFLICT (content)")
	assert.Contains(t, out.String(), "CorrectorOutput/page1.html")
	assert.Contains(t, out.String(), "CorrectorOutput/page7.html")
}

func TestNotifier_SoundFailureIsIgnored(t *testing.T) {
	sound := mocks.NewMockSoundPlayer(t)
	sound.EXPECT().PlaySoundForEvent(ports.SoundEventConflict).Return(errors.New("no audio")).Once()

	var out bytes.Buffer
	err := NewNotifier(&out, sound, false).NotifyConflict(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Nothing was committed or pushed.")
}

func TestNotifier_WithoutSound(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewNotifier(&out, nil, false).NotifyConflict(context.Background(), []string{"a"}))
	assert.NotEmpty(t, out.String())
}

func TestPrompter_NonInteractive(t *testing.T) {
	p := NewPrompter(false)

	_, err := p.PromptCredential(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthCancelled)

	assert.NoError(t, p.Warn(context.Background(), "Authentication Failed!", "Invalid username or password. Please try again"))
}

func TestRequired(t *testing.T) {
	check := required("username")
	assert.Error(t, check("  "))
	assert.NoError(t, check("reader"))
}
