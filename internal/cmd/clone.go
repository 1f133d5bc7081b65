package cmd

import (
	"context"
	"fmt"

	"github.com/udaan-tools/setsync/internal/ui"
)

// CloneCmd clones a set into <dest>/<repository name>
type CloneCmd struct {
	URL  string `arg:"" help:"Remote repository url or local path"`
	Dest string `arg:"" optional:"" help:"Parent directory of the clone" default:"." type:"path"`
}

// Run executes the clone command
func (c *CloneCmd) Run(ctx context.Context, cli *CLI) error {
	container := cli.Container
	var path string
	err := ui.RunWithProgress(ctx, "Importing Set...", container.Out, container.Interactive, func(ctx context.Context, r *ui.Reporter) error {
		return container.WithDisplay(r, func() error {
			var err error
			path, err = container.Projects.Clone(ctx, c.URL, c.Dest, container.Credentials(), r)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("failed to import set: %w", err)
	}
	fmt.Printf("Imported set into %s\n", path)
	return nil
}
