package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
)

// mergeStateFiles are left in .git by an interrupted or uncommitted merge
var mergeStateFiles = []string{
	"MERGE_HEAD",
	"MERGE_MSG",
	"MERGE_MODE",
	"AUTO_MERGE",
	"REVERT_HEAD",
	"CHERRY_PICK_HEAD",
	"BISECT_LOG",
}

// Merge applies theirsID to the working tree and index without committing.
// go-git has no three-way merge, so this runs the git binary; the index is
// then inspected with go-git for conflict entries.
func (r *Repository) Merge(ctx context.Context, theirsID string) (domain.MergeResult, error) {
	logging.Logger.Info("Merging", "theirs", shortID(theirsID), "path", r.path)

	cmd := exec.CommandContext(ctx, "git", "merge", "--no-commit", "--no-ff", "--no-edit", theirsID)
	cmd.Dir = r.path
	cmd.Env = append(os.Environ(), r.identityEnv()...)
	output, runErr := cmd.CombinedOutput()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.MergeResult{Outcome: domain.MergeFailed, Reason: ctxErr.Error()}, classify(ctx, ctxErr)
	}

	out := string(output)
	if runErr == nil && (strings.Contains(out, "Already up to date") || strings.Contains(out, "Already up-to-date")) {
		logging.Logger.Info("Merge found nothing to apply")
		return domain.MergeResult{Outcome: domain.MergeUpToDate}, nil
	}

	conflicted, err := r.conflictedPaths()
	if err != nil {
		return domain.MergeResult{Outcome: domain.MergeFailed, Reason: err.Error()}, err
	}
	if len(conflicted) > 0 {
		logging.Logger.Warn("Merge left conflicts", "paths", conflicted)
		return domain.MergeResult{ConflictedPaths: conflicted, Outcome: domain.MergeConflicted}, nil
	}

	if runErr != nil {
		logging.Logger.Error("Git merge failed", "error", runErr, "output", out)
		return domain.MergeResult{Outcome: domain.MergeFailed, Reason: strings.TrimSpace(out)}, nil
	}

	return domain.MergeResult{Outcome: domain.MergeClean}, nil
}

// mergedStage is the stage of a fully merged index entry. Stages 1 to 3
// (ancestor, ours, theirs) only appear for unmerged paths.
const mergedStage index.Stage = 0

// conflictedPaths returns the paths with unmerged index entries
func (r *Repository) conflictedPaths() ([]string, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	seen := make(map[string]struct{})
	for _, e := range idx.Entries {
		if e.Stage != mergedStage {
			seen[e.Name] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// CommitMerge records the current index as a two-parent commit of HEAD and theirsID
func (r *Repository) CommitMerge(ctx context.Context, theirsID, message string, author domain.Author) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            signature(author),
		Parents:           []plumbing.Hash{head.Hash(), plumbing.NewHash(theirsID)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create merge commit: %w", err)
	}

	logging.Logger.Info("Created merge commit", "hash", hash.String(), "parents", []string{shortID(head.Hash().String()), shortID(theirsID)})
	return hash.String(), nil
}

// CleanupState removes merge state files so the repository returns to a
// normal state
func (r *Repository) CleanupState(ctx context.Context) error {
	var errs []error
	for _, name := range mergeStateFiles {
		if err := os.Remove(r.gitDir(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// identityEnv exports the configured identity so git does not refuse to
// run when user.name is unset
func (r *Repository) identityEnv() []string {
	name, email := r.opts.Identity.Name, r.opts.Identity.Email
	if name == "" {
		name = "setsync"
	}
	if email == "" {
		email = "setsync@localhost"
	}
	return []string{
		"GIT_AUTHOR_NAME=" + name,
		"GIT_AUTHOR_EMAIL=" + email,
		"GIT_COMMITTER_NAME=" + name,
		"GIT_COMMITTER_EMAIL=" + email,
	}
}

func signature(author domain.Author) *object.Signature {
	return &object.Signature{Email: author.Email, Name: author.Name, When: time.Now()}
}
