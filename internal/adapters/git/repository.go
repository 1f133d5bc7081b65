package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// Options configures repositories produced by the Opener
type Options struct {
	// Identity is exported to the git binary during merges
	Identity domain.Author
	// KnownHostsFile verifies ssh remotes; empty uses the ssh defaults
	KnownHostsFile string
	// MaxAuthAttempts bounds how often the credential callback is consulted per operation
	MaxAuthAttempts int
}

// Opener implements ports.RepositoryOpener with go-git
type Opener struct {
	opts Options
}

// Verify interface compliance at compile time
var (
	_ ports.RepositoryOpener = (*Opener)(nil)
	_ ports.VersionControl   = (*Repository)(nil)
)

// NewOpener creates a new Opener
func NewOpener(opts Options) *Opener {
	if opts.MaxAuthAttempts < 1 {
		opts.MaxAuthAttempts = 1
	}
	return &Opener{opts: opts}
}

// Repository is a handle to one on-disk working copy. It is not safe for
// concurrent use; one sync cycle owns it at a time.
type Repository struct {
	anonymous map[string]*gogit.Remote
	lockMu    sync.Mutex
	lockFile  *os.File
	opts      Options
	path      string
	repo      *gogit.Repository
}

// IsRepository reports whether path holds a .git directory
func (o *Opener) IsRepository(path string) bool {
	info, err := os.Stat(filepath.Join(path, gogit.GitDirName))
	return err == nil && info.IsDir()
}

// Open opens an existing working copy
func (o *Opener) Open(ctx context.Context, path string) (ports.VersionControl, error) {
	logging.Logger.Debug("Opening repository", "path", path)

	repo, err := gogit.PlainOpen(path)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotARepository, path)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return o.wrap(path, repo), nil
}

// Init creates a repository at path. The caller is responsible for the
// initial commit.
func (o *Opener) Init(ctx context.Context, path string) (ports.VersionControl, error) {
	logging.Logger.Info("Initializing repository", "path", path)

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}
	repo, err := gogit.PlainInit(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}
	return o.wrap(path, repo), nil
}

// Clone clones url into destDir/<repository name> and returns the new
// working copy path
func (o *Opener) Clone(ctx context.Context, url, destDir string, auth ports.AuthCallback, progress io.Writer) (string, error) {
	name := repoNameFromURL(url)
	if name == "" {
		return "", fmt.Errorf("could not derive repository name from %q", url)
	}
	target := filepath.Join(destDir, name)
	logging.Logger.Info("Cloning repository", "url", url, "target", target)

	if !isGitURL(url) {
		if _, err := os.Stat(url); err != nil {
			return "", fmt.Errorf("%w: %q is neither a git url nor a local repository", domain.ErrRemoteUnreachable, url)
		}
	}

	if o.IsRepository(target) {
		existing, err := gogit.PlainOpen(target)
		if err != nil {
			return "", fmt.Errorf("failed to open existing clone: %w", err)
		}
		origin, err := existing.Remote(domain.DefaultRemoteName)
		if err == nil && len(origin.Config().URLs) > 0 && !isSameRepo(origin.Config().URLs[0], url) {
			return "", fmt.Errorf("%s already exists with a different remote.\nExisting: %s\nRequested: %s", target, origin.Config().URLs[0], url)
		}
		logging.Logger.Info("Reusing existing clone", "path", target)
		return target, nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create parent directory: %w", err)
	}

	err := withAuth(ctx, url, o.opts, auth, func(method authMethod) error {
		_, err := gogit.PlainCloneContext(ctx, target, false, &gogit.CloneOptions{
			Auth:     method,
			Progress: progress,
			URL:      url,
		})
		if err != nil {
			// A failed attempt leaves a partial .git behind that blocks the retry
			os.RemoveAll(target)
		}
		return err
	})
	if err != nil {
		logging.Logger.Error("Clone failed", "error", err, "url", url)
		return "", classify(ctx, err)
	}

	logging.Logger.Info("Repository cloned successfully", "path", target)
	return target, nil
}

func (o *Opener) wrap(path string, repo *gogit.Repository) *Repository {
	return &Repository{
		anonymous: make(map[string]*gogit.Remote),
		opts:      o.opts,
		path:      path,
		repo:      repo,
	}
}

// Path returns the working copy root
func (r *Repository) Path() string {
	return r.path
}

// Close releases the repository lock if it is still held
func (r *Repository) Close() error {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	if r.lockFile == nil {
		return nil
	}
	err := releaseLock(r.lockFile)
	r.lockFile = nil
	return err
}

// HeadID returns the commit id HEAD points to
func (r *Repository) HeadID(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// ResolveRef resolves a full reference name to a commit id
func (r *Repository) ResolveRef(ctx context.Context, refName string) (string, error) {
	ref, err := r.repo.Reference(plumbing.ReferenceName(refName), true)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", refName, err)
	}
	return ref.Hash().String(), nil
}

// ReadConfigText returns the raw .git/config contents
func (r *Repository) ReadConfigText(ctx context.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.path, gogit.GitDirName, "config"))
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}
	return string(data), nil
}

// gitDir returns the path of a file inside .git
func (r *Repository) gitDir(parts ...string) string {
	return filepath.Join(append([]string{r.path, gogit.GitDirName}, parts...)...)
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
