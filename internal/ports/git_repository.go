package ports

import (
	"context"
	"io"

	"github.com/udaan-tools/setsync/internal/domain"
)

// AuthCallback supplies a credential when the remote challenges for one.
// retryCount is 0 for the first challenge of an operation and increases
// with every rejected attempt.
type AuthCallback func(ctx context.Context, retryCount int) (domain.Credential, error)

// RemoteResolver finds or creates the remote a cycle talks to
type RemoteResolver interface {
	// CreateAnonymousRemote returns an in-memory remote that is not saved to config
	CreateAnonymousRemote(ctx context.Context, name, url string) (*domain.Remote, error)
	// LookupRemote returns domain.ErrRemoteNotFound when name is not configured
	LookupRemote(ctx context.Context, name string) (*domain.Remote, error)
}

// RemoteTransport moves objects between the local clone and a remote
type RemoteTransport interface {
	Fetch(ctx context.Context, remote *domain.Remote, auth AuthCallback, progress io.Writer) error
	Push(ctx context.Context, remote *domain.Remote, refSpec string, auth AuthCallback, progress io.Writer) error
}

// RefReader resolves references and reads repository configuration
type RefReader interface {
	HeadID(ctx context.Context) (string, error)
	IsAncestor(ctx context.Context, ancestorID, descendantID string) (bool, error)
	ReadConfigText(ctx context.Context) (string, error)
	ResolveRef(ctx context.Context, refName string) (string, error)
}

// MergeApplier merges a commit into the working tree and records the result
type MergeApplier interface {
	// CleanupState removes merge state files (MERGE_HEAD, MERGE_MSG, ...)
	CleanupState(ctx context.Context) error
	// CommitMerge creates a commit with HEAD and theirsID as parents from the current index
	CommitMerge(ctx context.Context, theirsID, message string, author domain.Author) (string, error)
	// Merge applies theirsID to the working tree and index without committing
	Merge(ctx context.Context, theirsID string) (domain.MergeResult, error)
}

// Committer records local work
type Committer interface {
	Commit(ctx context.Context, message string, author domain.Author) (string, error)
	StageAll(ctx context.Context) error
}

// HistoryReader inspects existing commits
type HistoryReader interface {
	AheadBehind(ctx context.Context, localID, remoteID string) (ahead int, behind int, err error)
	ChangedFiles(ctx context.Context, commitID string) ([]string, error)
}

// RepoLocker guarantees one sync cycle in flight per repository
type RepoLocker interface {
	// TryLock returns domain.ErrSyncInProgress when another cycle holds the lock
	TryLock(ctx context.Context) (unlock func() error, err error)
}

// VersionControl is the composite handle to one on-disk repository.
// It is not safe for concurrent use.
type VersionControl interface {
	Committer
	HistoryReader
	MergeApplier
	RefReader
	RemoteResolver
	RemoteTransport
	RepoLocker
	Close() error
	Path() string
}

// RepositoryOpener produces VersionControl handles
type RepositoryOpener interface {
	Clone(ctx context.Context, url, destDir string, auth AuthCallback, progress io.Writer) (string, error)
	Init(ctx context.Context, path string) (VersionControl, error)
	IsRepository(path string) bool
	Open(ctx context.Context, path string) (VersionControl, error)
}
