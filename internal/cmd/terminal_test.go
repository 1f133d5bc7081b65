package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ports/mocks"
)

type recordingPauser struct {
	paused int
}

func (r *recordingPauser) Pause(fn func() error) error {
	r.paused++
	return fn()
}

func TestTerminalPrompter_PausesAttachedDisplay(t *testing.T) {
	inner := mocks.NewMockCredentialPrompter(t)
	inner.EXPECT().PromptCredential(context.Background()).Return(domain.Credential{Username: "corrector01", Token: "tok"}, nil).Once()
	inner.EXPECT().Warn(context.Background(), "title", "message").Return(nil)

	term := &terminal{}
	p := &terminalPrompter{inner: inner, terminal: term}
	display := &recordingPauser{}
	detach := term.attach(display)

	cred, err := p.PromptCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "corrector01", cred.Username)
	require.NoError(t, p.Warn(context.Background(), "title", "message"))
	assert.Equal(t, 2, display.paused)

	detach()
	inner.EXPECT().PromptCredential(context.Background()).Return(domain.Credential{}, domain.ErrAuthCancelled)
	_, err = p.PromptCredential(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthCancelled)
	assert.Equal(t, 2, display.paused, "detached display is not paused")
}

func TestTerminalNotifier_PausesAttachedDisplay(t *testing.T) {
	inner := mocks.NewMockNotifier(t)
	inner.EXPECT().NotifyConflict(context.Background(), []string{"CorrectorOutput/p1.html"}).Return(nil)

	term := &terminal{}
	display := &recordingPauser{}
	defer term.attach(display)()

	n := &terminalNotifier{inner: inner, terminal: term}
	require.NoError(t, n.NotifyConflict(context.Background(), []string{"CorrectorOutput/p1.html"}))
	assert.Equal(t, 1, display.paused)
}
