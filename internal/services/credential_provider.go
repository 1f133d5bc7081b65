package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// Retry warning shown before every re-prompt
const (
	RetryWarningMessage = "Invalid username or password. Please try again"
	RetryWarningTitle   = "Authentication Failed!"
)

// CredentialResult is delivered by AcquireAsync
type CredentialResult struct {
	Credential domain.Credential
	Err        error
}

// CredentialProvider answers authentication challenges for one session.
// The store it caches into is owned by the caller.
type CredentialProvider struct {
	exchanger ports.CredentialExchanger
	login     domain.AccountLogin
	prompter  ports.CredentialPrompter
	store     *domain.CredentialStore
	timeout   time.Duration
}

// NewCredentialProvider creates a new CredentialProvider. exchanger may be
// nil, in which case the user is always prompted.
func NewCredentialProvider(
	store *domain.CredentialStore,
	exchanger ports.CredentialExchanger,
	prompter ports.CredentialPrompter,
	login domain.AccountLogin,
	timeout time.Duration,
) *CredentialProvider {
	if store == nil {
		store = domain.NewCredentialStore()
	}
	return &CredentialProvider{
		exchanger: exchanger,
		login:     login,
		prompter:  prompter,
		store:     store,
		timeout:   timeout,
	}
}

// Acquire returns a credential for the retryCount-th challenge of an
// operation. The first challenge is answered from cache when possible,
// then through the account exchange, then by prompting. Later challenges
// warn and prompt again.
func (p *CredentialProvider) Acquire(ctx context.Context, retryCount int) (domain.Credential, error) {
	if retryCount == 0 {
		if cached, ok := p.store.Cached(); ok {
			logging.Logger.Debug("Using cached credential", "username", cached.Username)
			return cached, nil
		}

		cred, err := p.exchange(ctx)
		if err == nil {
			p.store.Put(cred)
			return cred, nil
		}
		if errors.Is(err, domain.ErrTimeout) || errors.Is(err, domain.ErrCancelled) {
			return domain.Credential{}, err
		}
		if !errors.Is(err, domain.ErrNoAccountLogin) {
			logging.Logger.Warn("Credential exchange failed, prompting", "error", err)
		}
	} else {
		logging.Logger.Info("Credential rejected, prompting again", "retry", retryCount)
		if err := p.prompter.Warn(ctx, RetryWarningTitle, RetryWarningMessage); err != nil {
			logging.Logger.Debug("Retry warning not shown", "error", err)
		}
	}

	cred, err := p.prompter.PromptCredential(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthCancelled) {
			return domain.Credential{}, err
		}
		return domain.Credential{}, fmt.Errorf("%w: %v", domain.ErrAuthCancelled, err)
	}
	p.store.Put(cred)
	return cred, nil
}

// AcquireAsync runs Acquire on its own goroutine. The channel receives
// exactly one result and is then closed.
func (p *CredentialProvider) AcquireAsync(ctx context.Context, retryCount int) <-chan CredentialResult {
	ch := make(chan CredentialResult, 1)
	go func() {
		defer close(ch)
		cred, err := p.Acquire(ctx, retryCount)
		ch <- CredentialResult{Credential: cred, Err: err}
	}()
	return ch
}

// Callback adapts Acquire to the git adapter's auth loop
func (p *CredentialProvider) Callback() ports.AuthCallback {
	return p.Acquire
}

// MarkValid flags the last returned credential as accepted by the remote
func (p *CredentialProvider) MarkValid() {
	p.store.MarkValid()
}

func (p *CredentialProvider) exchange(ctx context.Context) (domain.Credential, error) {
	if p.exchanger == nil || p.login.IsZero() {
		return domain.Credential{}, domain.ErrNoAccountLogin
	}

	exCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		exCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	logging.Logger.Debug("Exchanging account login", "username", p.login.Username)
	cred, err := p.exchanger.Exchange(exCtx, p.login)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			return domain.Credential{}, domain.ErrCancelled
		case errors.Is(exCtx.Err(), context.DeadlineExceeded):
			return domain.Credential{}, fmt.Errorf("%w: credential exchange after %s", domain.ErrTimeout, p.timeout)
		}
		return domain.Credential{}, err
	}
	return cred, nil
}
