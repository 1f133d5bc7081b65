package git

import (
	"context"
	"errors"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
)

const testURL = "https://example.org/sets/book.git"

func TestWithAuth_AnonymousSuccessSkipsCallback(t *testing.T) {
	calls := 0
	cb := func(ctx context.Context, retry int) (domain.Credential, error) {
		calls++
		return domain.Credential{}, nil
	}

	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, cb, func(m authMethod) error {
		assert.Nil(t, m)
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWithAuth_AlreadyUpToDateIsSuccess(t *testing.T) {
	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, nil, func(authMethod) error {
		return gogit.NoErrAlreadyUpToDate
	})
	assert.NoError(t, err)
}

func TestWithAuth_ChallengeUsesCallbackCredential(t *testing.T) {
	var retries []int
	cb := func(ctx context.Context, retry int) (domain.Credential, error) {
		retries = append(retries, retry)
		return domain.Credential{Username: "reader", Token: "tok"}, nil
	}

	var seen []authMethod
	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, cb, func(m authMethod) error {
		seen = append(seen, m)
		if m == nil {
			return transport.ErrAuthenticationRequired
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0}, retries)
	require.Len(t, seen, 2)
	assert.Equal(t, &githttp.BasicAuth{Username: "reader", Password: "tok"}, seen[1])
}

func TestWithAuth_BoundedByMaxAttempts(t *testing.T) {
	var retries []int
	cb := func(ctx context.Context, retry int) (domain.Credential, error) {
		retries = append(retries, retry)
		return domain.Credential{Username: "reader", Token: "wrong"}, nil
	}

	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, cb, func(authMethod) error {
		return transport.ErrAuthorizationFailed
	})

	assert.ErrorIs(t, err, domain.ErrAuthRejected)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestWithAuth_CallbackErrorStopsLoop(t *testing.T) {
	cb := func(ctx context.Context, retry int) (domain.Credential, error) {
		return domain.Credential{}, domain.ErrAuthCancelled
	}

	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, cb, func(authMethod) error {
		return transport.ErrAuthenticationRequired
	})

	assert.ErrorIs(t, err, domain.ErrAuthCancelled)
}

func TestWithAuth_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	err := withAuth(context.Background(), testURL, Options{MaxAuthAttempts: 2}, nil, func(authMethod) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestClassify(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		expected error
	}{
		{"auth", context.Background(), transport.ErrAuthenticationRequired, domain.ErrAuthRejected},
		{"non fast forward", context.Background(), gogit.ErrNonFastForwardUpdate, domain.ErrPushRejected},
		{"remote rejected", context.Background(), errors.New("command error on refs/heads/main: failed to update ref"), domain.ErrPushRejected},
		{"not found", context.Background(), transport.ErrRepositoryNotFound, domain.ErrRemoteUnreachable},
		{"refused", context.Background(), errors.New("dial tcp: connection refused"), domain.ErrRemoteUnreachable},
		{"deadline", context.Background(), context.DeadlineExceeded, domain.ErrTimeout},
		{"cancelled", cancelled, errors.New("signal: killed"), domain.ErrCancelled},
		{"already classified", context.Background(), domain.ErrAuthCancelled, domain.ErrAuthCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.ctx, tt.err), tt.expected)
		})
	}
}
