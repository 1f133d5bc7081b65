package git

import (
	"context"
	"errors"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// LookupRemote returns a remote configured in .git/config
func (r *Repository) LookupRemote(ctx context.Context, name string) (*domain.Remote, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, name)
		}
		return nil, fmt.Errorf("failed to look up remote %s: %w", name, err)
	}

	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return nil, fmt.Errorf("%w: remote %s has no url", domain.ErrRemoteNotFound, name)
	}
	return &domain.Remote{Name: cfg.Name, URL: cfg.URLs[0]}, nil
}

// CreateAnonymousRemote builds an in-memory remote. Nothing is written to
// .git/config; the remote lives as long as this handle.
func (r *Repository) CreateAnonymousRemote(ctx context.Context, name, url string) (*domain.Remote, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: no url for anonymous remote %s", domain.ErrRemoteUnreachable, name)
	}
	cfg := &config.RemoteConfig{
		Name:  name,
		URLs:  []string{url},
		Fetch: []config.RefSpec{fetchRefSpec(name)},
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnreachable, err)
	}

	r.anonymous[name] = gogit.NewRemote(r.repo.Storer, cfg)
	logging.Logger.Info("Created anonymous remote", "name", name, "url", url)
	return &domain.Remote{Anonymous: true, Name: name, URL: url}, nil
}

// Fetch downloads every branch of remote into refs/remotes/<name>/*
func (r *Repository) Fetch(ctx context.Context, remote *domain.Remote, auth ports.AuthCallback, progress io.Writer) error {
	gr, err := r.remote(remote)
	if err != nil {
		return err
	}

	logging.Logger.Info("Fetching", "remote", remote.Name, "url", remote.URL)
	err = withAuth(ctx, remote.URL, r.opts, auth, func(method authMethod) error {
		return gr.FetchContext(ctx, &gogit.FetchOptions{
			Auth:       method,
			Progress:   progress,
			RefSpecs:   []config.RefSpec{fetchRefSpec(remote.Name)},
			RemoteName: remote.Name,
		})
	})
	if err != nil {
		logging.Logger.Error("Fetch failed", "error", err, "remote", remote.Name)
		return classify(ctx, err)
	}
	return nil
}

// Push updates the remote with refSpec
func (r *Repository) Push(ctx context.Context, remote *domain.Remote, refSpec string, auth ports.AuthCallback, progress io.Writer) error {
	spec := config.RefSpec(refSpec)
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid refspec %q: %w", refSpec, err)
	}
	gr, err := r.remote(remote)
	if err != nil {
		return err
	}

	logging.Logger.Info("Pushing", "remote", remote.Name, "refspec", refSpec)
	err = withAuth(ctx, remote.URL, r.opts, auth, func(method authMethod) error {
		return gr.PushContext(ctx, &gogit.PushOptions{
			Auth:       method,
			Progress:   progress,
			RefSpecs:   []config.RefSpec{spec},
			RemoteName: remote.Name,
		})
	})
	if err != nil {
		logging.Logger.Error("Push failed", "error", err, "remote", remote.Name)
		return classify(ctx, err)
	}
	return nil
}

// remote resolves a domain remote to the go-git object that talks to it
func (r *Repository) remote(remote *domain.Remote) (*gogit.Remote, error) {
	if remote == nil {
		return nil, fmt.Errorf("%w: no remote", domain.ErrRemoteUnreachable)
	}
	if remote.Anonymous {
		gr, ok := r.anonymous[remote.Name]
		if !ok {
			return nil, fmt.Errorf("%w: anonymous remote %s was not created on this handle", domain.ErrRemoteNotFound, remote.Name)
		}
		return gr, nil
	}
	gr, err := r.repo.Remote(remote.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, remote.Name)
	}
	return gr, nil
}

func fetchRefSpec(remoteName string) config.RefSpec {
	return config.RefSpec(fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", remoteName))
}
