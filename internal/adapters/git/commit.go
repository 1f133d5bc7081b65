package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
)

// StageAll adds every change in the working tree to the index, deletions included
func (r *Repository) StageAll(ctx context.Context) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit records the index with HEAD as parent, or as a root commit on an
// unborn branch
func (r *Repository) Commit(ctx context.Context, message string, author domain.Author) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            signature(author),
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	logging.Logger.Info("Committed", "hash", hash.String(), "message", message)
	return hash.String(), nil
}
