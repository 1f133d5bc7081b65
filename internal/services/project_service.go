package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// ProjectService opens, creates and inspects sets outside the sync cycle
type ProjectService struct {
	author     domain.Author
	journal    ports.SyncRunReader
	opener     ports.RepositoryOpener
	remoteName string
}

// NewProjectService creates a new ProjectService. journal may be nil.
func NewProjectService(opener ports.RepositoryOpener, journal ports.SyncRunReader, author domain.Author, remoteName string) *ProjectService {
	if remoteName == "" {
		remoteName = domain.DefaultRemoteName
	}
	return &ProjectService{
		author:     author,
		journal:    journal,
		opener:     opener,
		remoteName: remoteName,
	}
}

// Open opens the repository at path. A directory that is not yet under
// version control is initialized with everything in it committed.
func (s *ProjectService) Open(ctx context.Context, path string) (ports.VersionControl, error) {
	if s.opener.IsRepository(path) {
		return s.opener.Open(ctx, path)
	}
	return s.Init(ctx, path)
}

// Init puts path under version control and creates the initial commit
func (s *ProjectService) Init(ctx context.Context, path string) (ports.VersionControl, error) {
	repo, err := s.opener.Init(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := repo.StageAll(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	hash, err := repo.Commit(ctx, domain.InitialCommitMessage, s.author)
	if err != nil {
		repo.Close()
		return nil, err
	}
	logging.Logger.Info("Project initialized", "path", path, "commit", hash)
	return repo, nil
}

// Commit stages everything in the working copy and commits it. The commit
// is reported to recorder when one is given.
func (s *ProjectService) Commit(ctx context.Context, repo ports.VersionControl, message string, recorder *HistoryRecorder) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("commit message is required")
	}
	if err := repo.StageAll(ctx); err != nil {
		return "", err
	}
	hash, err := repo.Commit(ctx, message, s.author)
	if err != nil {
		return "", err
	}
	if recorder != nil {
		recorder.Record(ctx, hash, s.author.Email)
	}
	return hash, nil
}

// Clone clones url below destDir and returns the working copy path
func (s *ProjectService) Clone(ctx context.Context, url, destDir string, credentials *CredentialProvider, progress io.Writer) (string, error) {
	var auth ports.AuthCallback
	if credentials != nil {
		auth = credentials.Callback()
	}
	path, err := s.opener.Clone(ctx, url, destDir, auth, progress)
	if err != nil {
		return "", err
	}
	if credentials != nil {
		credentials.MarkValid()
	}
	return path, nil
}

// Describe lists the files a commit changed in role's output directory,
// with the directory prefix removed. Without a role every path is listed.
// The result is domain.NoChangedFiles when nothing matches.
func (s *ProjectService) Describe(ctx context.Context, repo ports.VersionControl, commitID string, role domain.Role) (string, error) {
	if commitID == "" {
		commitID = "HEAD"
	}
	paths, err := repo.ChangedFiles(ctx, commitID)
	if err != nil {
		return "", err
	}

	dir := role.OutputDir()
	var b strings.Builder
	for _, p := range paths {
		if dir != "" {
			rest, ok := strings.CutPrefix(p, dir+"/")
			if !ok {
				continue
			}
			p = rest
		}
		b.WriteString(p)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return domain.NoChangedFiles, nil
	}
	return b.String(), nil
}

// Status compares the working copy with the last fetched remote state and
// looks up the last journaled sync
func (s *ProjectService) Status(ctx context.Context, repo ports.VersionControl) (*domain.SyncStatus, error) {
	text, err := repo.ReadConfigText(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigParseFailure, err)
	}
	branch, err := domain.ParseBranchName(text)
	if err != nil {
		return nil, err
	}

	status := &domain.SyncStatus{Branch: branch}
	if status.LocalID, err = repo.HeadID(ctx); err != nil {
		return nil, err
	}

	status.RemoteRef = domain.RemoteTrackingRef(s.remoteName, branch)
	if status.RemoteID, err = repo.ResolveRef(ctx, status.RemoteRef); err != nil {
		logging.Logger.Debug("No remote tracking ref", "ref", status.RemoteRef, "error", err)
		status.RemoteRef = ""
	}

	g, gctx := errgroup.WithContext(ctx)
	if status.RemoteID != "" {
		g.Go(func() error {
			ahead, behind, err := repo.AheadBehind(gctx, status.LocalID, status.RemoteID)
			if err != nil {
				return err
			}
			status.Ahead, status.Behind = ahead, behind
			return nil
		})
	}
	if s.journal != nil {
		g.Go(func() error {
			run, err := s.journal.LatestRun(gctx, repo.Path())
			if err != nil {
				logging.Logger.Warn("Failed to read last sync run", "error", err)
				return nil
			}
			status.LastRun = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return status, nil
}
