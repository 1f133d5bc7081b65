package cmd

import (
	"context"
	"fmt"
)

// CommitCmd commits all changes in the set
type CommitCmd struct {
	ProjectFlags
	Message string `help:"Commit message" short:"m" required:""`
}

// Run executes the commit command
func (c *CommitCmd) Run(ctx context.Context, cli *CLI) error {
	repo, _, err := cli.openExisting(ctx, c.ProjectFlags)
	if err != nil {
		return err
	}
	defer repo.Close()

	hash, err := cli.Container.Projects.Commit(ctx, repo, c.Message, cli.Container.Recorder(repo.Path()))
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	fmt.Printf("Committed %s\n", shortHash(hash))
	return nil
}
