package cmd

import (
	"context"
	"fmt"
)

// InitCmd opens a set, creating the repository and its initial commit
// when the directory is not under version control yet
type InitCmd struct {
	Dir string `arg:"" optional:"" help:"Set directory" default:"." type:"path"`
}

// Run executes the init command
func (i *InitCmd) Run(ctx context.Context, cli *CLI) error {
	existed := cli.Container.Opener.IsRepository(i.Dir)

	repo, err := cli.Container.Projects.Open(ctx, i.Dir)
	if err != nil {
		return err
	}
	defer repo.Close()

	if existed {
		fmt.Printf("Opened existing set at %s\n", repo.Path())
		return nil
	}
	fmt.Printf("Initialized set at %s\n", repo.Path())
	return nil
}
