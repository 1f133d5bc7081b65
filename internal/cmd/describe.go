package cmd

import (
	"context"
	"fmt"
)

// DescribeCmd lists what a commit changed in the role's output directory
type DescribeCmd struct {
	ProjectFlags
	Commit string `arg:"" optional:"" help:"Commit id or revision (default HEAD)"`
}

// Run executes the describe command
func (d *DescribeCmd) Run(ctx context.Context, cli *CLI) error {
	repo, role, err := cli.openExisting(ctx, d.ProjectFlags)
	if err != nil {
		return err
	}
	defer repo.Close()

	out, err := cli.Container.Projects.Describe(ctx, repo, d.Commit, role)
	if err != nil {
		return err
	}
	fmt.Print(out)
	if out != "" && out[len(out)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
