package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

type authMethod = transport.AuthMethod

// withAuth runs op, answering authentication challenges through cb.
//
// HTTP remotes start anonymous. Every challenge asks cb for a credential
// with an increasing retry count until opts.MaxAuthAttempts is reached.
// SSH remotes use the agent and never consult cb.
func withAuth(ctx context.Context, url string, opts Options, cb ports.AuthCallback, op func(authMethod) error) error {
	method, isSSH, err := initialAuth(url, opts.KnownHostsFile)
	if err != nil {
		return err
	}

	for retry := 0; ; retry++ {
		err := op(method)
		if err == nil || errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return nil
		}
		if !isAuthError(err) {
			return err
		}
		if isSSH || cb == nil || retry >= opts.MaxAuthAttempts {
			logging.Logger.Warn("Authentication rejected", "url", url, "attempts", retry)
			return fmt.Errorf("%w: %v", domain.ErrAuthRejected, err)
		}

		logging.Logger.Debug("Remote requested credentials", "url", url, "retry", retry)
		cred, cbErr := cb(ctx, retry)
		if cbErr != nil {
			return cbErr
		}
		method = &githttp.BasicAuth{Username: cred.Username, Password: cred.Token}
	}
}

// initialAuth picks the first auth method for url
func initialAuth(url, knownHostsFile string) (authMethod, bool, error) {
	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid remote url %q: %v", domain.ErrRemoteUnreachable, url, err)
	}
	if ep.Protocol != "ssh" {
		return nil, false, nil
	}

	user := ep.User
	if user == "" {
		user = gitssh.DefaultUsername
	}
	auth, err := gitssh.NewSSHAgentAuth(user)
	if err != nil {
		return nil, true, fmt.Errorf("%w: ssh agent unavailable: %v", domain.ErrAuthRejected, err)
	}
	if knownHostsFile != "" {
		callback, err := knownhosts.New(knownHostsFile)
		if err != nil {
			return nil, true, fmt.Errorf("failed to load known hosts %s: %w", knownHostsFile, err)
		}
		auth.HostKeyCallback = callback
	}
	return auth, true, nil
}

func isAuthError(err error) bool {
	return errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed)
}
