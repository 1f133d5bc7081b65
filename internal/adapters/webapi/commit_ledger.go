package webapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// CommitLedger reports commits to the sets server
type CommitLedger struct {
	client   *http.Client
	endpoint string
}

// Verify interface compliance at compile time
var _ ports.CommitLedger = (*CommitLedger)(nil)

// NewCommitLedger creates a new CommitLedger
func NewCommitLedger(endpoint string, opts ClientOptions) *CommitLedger {
	return &CommitLedger{client: newHTTPClient(opts), endpoint: endpoint}
}

// Post sends commit_no and email as a form
func (l *CommitLedger) Post(ctx context.Context, commitHash, email string) error {
	if l.endpoint == "" {
		return errors.New("no ledger endpoint configured")
	}

	logging.Logger.Debug("Posting commit to ledger", "endpoint", l.endpoint, "hash", commitHash)
	_, err := postForm(ctx, l.client, l.endpoint, url.Values{
		"commit_no": {commitHash},
		"email":     {email},
	})
	return err
}
