package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// CredentialExchanger trades an account login for a repository token at the
// sets server
type CredentialExchanger struct {
	client   *http.Client
	endpoint string
}

// Verify interface compliance at compile time
var _ ports.CredentialExchanger = (*CredentialExchanger)(nil)

// NewCredentialExchanger creates a new CredentialExchanger
func NewCredentialExchanger(endpoint string, opts ClientOptions) *CredentialExchanger {
	return &CredentialExchanger{client: newHTTPClient(opts), endpoint: endpoint}
}

type tokenResponse struct {
	GithubToken    string `json:"github_token"`
	GithubUsername string `json:"github_username"`
}

// Exchange posts username and password and returns the token the server
// hands back
func (e *CredentialExchanger) Exchange(ctx context.Context, login domain.AccountLogin) (domain.Credential, error) {
	if e.endpoint == "" {
		return domain.Credential{}, errors.New("no credential endpoint configured")
	}
	if login.IsZero() {
		return domain.Credential{}, domain.ErrNoAccountLogin
	}

	logging.Logger.Debug("Exchanging account login", "endpoint", e.endpoint, "username", login.Username)
	body, err := postForm(ctx, e.client, e.endpoint, url.Values{
		"password": {login.Password},
		"username": {login.Username},
	})
	if err != nil {
		logging.Logger.Warn("Credential exchange failed", "error", err)
		return domain.Credential{}, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Credential{}, fmt.Errorf("invalid credential response: %w", err)
	}
	if resp.GithubToken == "" || resp.GithubUsername == "" {
		return domain.Credential{}, errors.New("credential response is missing github_token or github_username")
	}

	return domain.Credential{Token: resp.GithubToken, Username: resp.GithubUsername}, nil
}
