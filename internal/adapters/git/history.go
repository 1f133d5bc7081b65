package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// IsAncestor reports whether ancestorID is reachable from descendantID
func (r *Repository) IsAncestor(ctx context.Context, ancestorID, descendantID string) (bool, error) {
	if ancestorID == descendantID {
		return true, nil
	}
	ancestor, err := r.commit(ancestorID)
	if err != nil {
		return false, err
	}
	descendant, err := r.commit(descendantID)
	if err != nil {
		return false, err
	}
	return ancestor.IsAncestor(descendant)
}

// AheadBehind counts commits reachable from only one side
func (r *Repository) AheadBehind(ctx context.Context, localID, remoteID string) (int, int, error) {
	local, err := r.reachable(ctx, localID)
	if err != nil {
		return 0, 0, err
	}
	remote, err := r.reachable(ctx, remoteID)
	if err != nil {
		return 0, 0, err
	}

	ahead, behind := 0, 0
	for h := range local {
		if _, ok := remote[h]; !ok {
			ahead++
		}
	}
	for h := range remote {
		if _, ok := local[h]; !ok {
			behind++
		}
	}
	return ahead, behind, nil
}

// ChangedFiles lists paths touched by commitID relative to its first parent.
// A root commit is compared with the empty tree.
func (r *Repository) ChangedFiles(ctx context.Context, commitID string) ([]string, error) {
	c, err := r.commit(commitID)
	if err != nil {
		return nil, err
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree of %s: %w", shortID(commitID), err)
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read first parent of %s: %w", shortID(commitID), err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, fmt.Errorf("failed to read parent tree: %w", err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w", shortID(commitID), err)
	}

	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		name := change.To.Name
		if name == "" {
			name = change.From.Name
		}
		paths = append(paths, name)
	}
	sort.Strings(paths)
	return paths, nil
}

// commit loads a commit by full or abbreviated id, ref name or HEAD
func (r *Repository) commit(id string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(id))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", shortID(id), err)
	}
	c, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", shortID(id), err)
	}
	return c, nil
}

// reachable returns every commit hash reachable from id
func (r *Repository) reachable(ctx context.Context, id string) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{From: plumbing.NewHash(id)})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", shortID(id), err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, err
	}
	return seen, nil
}
