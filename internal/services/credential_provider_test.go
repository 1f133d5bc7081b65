package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
	portsmocks "github.com/udaan-tools/setsync/internal/ports/mocks"
)

var (
	testLogin = domain.AccountLogin{Password: "secret", Username: "verifier"}
	testToken = domain.Credential{Token: "ghp_abc", Username: "set-bot"}
)

func TestCredentialProvider_CachedAfterValidation(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	exchanger.EXPECT().Exchange(mock.Anything, testLogin).Return(testToken, nil).Once()

	p := NewCredentialProvider(domain.NewCredentialStore(), exchanger, prompter, testLogin, time.Second)

	first, err := p.Acquire(context.Background(), 0)
	require.NoError(t, err)
	p.MarkValid()

	second, err := p.Acquire(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, testToken, first)
	assert.Equal(t, first, second)
	exchanger.AssertNumberOfCalls(t, "Exchange", 1)
	prompter.AssertNotCalled(t, "PromptCredential", mock.Anything)
}

func TestCredentialProvider_UnvalidatedCredentialIsExchangedAgain(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	exchanger.EXPECT().Exchange(mock.Anything, testLogin).Return(testToken, nil).Twice()

	p := NewCredentialProvider(nil, exchanger, prompter, testLogin, time.Second)

	_, err := p.Acquire(context.Background(), 0)
	require.NoError(t, err)
	_, err = p.Acquire(context.Background(), 0)
	require.NoError(t, err)
}

func TestCredentialProvider_ExchangeFailureFallsBackToPrompt(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	typed := domain.Credential{Token: "typed", Username: "me"}
	exchanger.EXPECT().Exchange(mock.Anything, testLogin).Return(domain.Credential{}, errors.New("status 500")).Once()
	prompter.EXPECT().PromptCredential(mock.Anything).Return(typed, nil).Once()

	store := domain.NewCredentialStore()
	p := NewCredentialProvider(store, exchanger, prompter, testLogin, time.Second)

	cred, err := p.Acquire(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, typed, cred)
	pending, ok := store.Pending()
	assert.True(t, ok)
	assert.Equal(t, typed, pending)
}

func TestCredentialProvider_NoLoginPromptsDirectly(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	prompter.EXPECT().PromptCredential(mock.Anything).Return(testToken, nil).Once()

	p := NewCredentialProvider(nil, exchanger, prompter, domain.AccountLogin{}, time.Second)

	_, err := p.Acquire(context.Background(), 0)

	require.NoError(t, err)
	exchanger.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
}

func TestCredentialProvider_RetryWarnsThenPrompts(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	var order []string
	prompter.EXPECT().Warn(mock.Anything, RetryWarningTitle, RetryWarningMessage).
		Run(func(context.Context, string, string) { order = append(order, "warn") }).
		Return(nil).Once()
	prompter.EXPECT().PromptCredential(mock.Anything).
		Run(func(context.Context) { order = append(order, "prompt") }).
		Return(testToken, nil).Once()

	store := domain.NewCredentialStore()
	store.Put(domain.Credential{Token: "old", Username: "old"})
	store.MarkValid()
	p := NewCredentialProvider(store, exchanger, prompter, testLogin, time.Second)

	cred, err := p.Acquire(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, testToken, cred)
	assert.Equal(t, []string{"warn", "prompt"}, order)
	exchanger.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)

	_, ok := store.Cached()
	assert.False(t, ok, "replacement credential waits for validation")
}

func TestCredentialProvider_PromptCancelled(t *testing.T) {
	prompter := portsmocks.NewMockCredentialPrompter(t)
	prompter.EXPECT().PromptCredential(mock.Anything).Return(domain.Credential{}, domain.ErrAuthCancelled).Once()

	p := NewCredentialProvider(nil, nil, prompter, domain.AccountLogin{}, time.Second)

	_, err := p.Acquire(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrAuthCancelled)
}

func TestCredentialProvider_ExchangeTimeout(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	exchanger.EXPECT().Exchange(mock.Anything, testLogin).
		RunAndReturn(func(ctx context.Context, _ domain.AccountLogin) (domain.Credential, error) {
			<-ctx.Done()
			return domain.Credential{}, ctx.Err()
		}).Once()

	p := NewCredentialProvider(nil, exchanger, prompter, testLogin, 20*time.Millisecond)

	_, err := p.Acquire(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrTimeout)
	prompter.AssertNotCalled(t, "PromptCredential", mock.Anything)
}

func TestCredentialProvider_AcquireAsync(t *testing.T) {
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	exchanger.EXPECT().Exchange(mock.Anything, testLogin).Return(testToken, nil).Once()

	p := NewCredentialProvider(nil, exchanger, portsmocks.NewMockCredentialPrompter(t), testLogin, time.Second)

	select {
	case res, ok := <-p.AcquireAsync(context.Background(), 0):
		require.True(t, ok)
		require.NoError(t, res.Err)
		assert.Equal(t, testToken, res.Credential)
	case <-time.After(time.Second):
		t.Fatal("credential not delivered")
	}
}
