package cmd

import (
	"context"
	"sync"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ports"
)

// pauser is implemented by *ui.Reporter
type pauser interface {
	Pause(fn func() error) error
}

// terminal serializes prompts against a running progress display
type terminal struct {
	mu     sync.Mutex
	active pauser
}

// attach routes prompts through p until the returned func is called
func (t *terminal) attach(p pauser) (detach func()) {
	t.mu.Lock()
	t.active = p
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		t.active = nil
		t.mu.Unlock()
	}
}

func (t *terminal) run(fn func() error) error {
	t.mu.Lock()
	active := t.active
	t.mu.Unlock()
	if active == nil {
		return fn()
	}
	return active.Pause(fn)
}

// terminalPrompter pauses the progress display while asking
type terminalPrompter struct {
	inner    ports.CredentialPrompter
	terminal *terminal
}

var (
	_ ports.CredentialPrompter = (*terminalPrompter)(nil)
	_ ports.Notifier           = (*terminalNotifier)(nil)
)

func (p *terminalPrompter) PromptCredential(ctx context.Context) (domain.Credential, error) {
	var cred domain.Credential
	err := p.terminal.run(func() error {
		var err error
		cred, err = p.inner.PromptCredential(ctx)
		return err
	})
	return cred, err
}

func (p *terminalPrompter) Warn(ctx context.Context, title, message string) error {
	return p.terminal.run(func() error {
		return p.inner.Warn(ctx, title, message)
	})
}

// terminalNotifier pauses the progress display while the conflict notice shows
type terminalNotifier struct {
	inner    ports.Notifier
	terminal *terminal
}

func (n *terminalNotifier) NotifyConflict(ctx context.Context, conflictedPaths []string) error {
	return n.terminal.run(func() error {
		return n.inner.NotifyConflict(ctx, conflictedPaths)
	})
}
