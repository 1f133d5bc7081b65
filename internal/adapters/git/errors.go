package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/udaan-tools/setsync/internal/domain"
)

// classify maps transport failures onto domain sentinels. Errors that
// already carry a domain sentinel pass through unchanged.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if domain.KindOf(err) != domain.KindUnknown {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	case isAuthError(err):
		return fmt.Errorf("%w: %v", domain.ErrAuthRejected, err)
	case errors.Is(err, gogit.ErrNonFastForwardUpdate) || errors.Is(err, gogit.ErrForceNeeded) || isRejection(err):
		return fmt.Errorf("%w: %v", domain.ErrPushRejected, err)
	case errors.Is(err, transport.ErrRepositoryNotFound) ||
		errors.Is(err, transport.ErrEmptyRemoteRepository) ||
		errors.Is(err, gogit.ErrRemoteNotFound) ||
		isNetworkError(err):
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnreachable, err)
	}
	return err
}

// isRejection matches report-status failures sent back by the receiving side
func isRejection(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "rejected") ||
		strings.Contains(msg, "command error on") ||
		strings.Contains(msg, "non-fast-forward")
}

func isNetworkError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"connection reset",
		"repository not found",
		"does not appear to be a git repository",
	} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
