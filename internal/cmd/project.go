package cmd

import (
	"context"
	"fmt"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ports"
)

// openExisting opens the set in flags.Dir without initializing it
func (c *CLI) openExisting(ctx context.Context, flags ProjectFlags) (ports.VersionControl, domain.Role, error) {
	role, err := c.role(flags)
	if err != nil {
		return nil, "", err
	}
	repo, err := c.Container.Opener.Open(ctx, flags.Dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open set: %w", err)
	}
	return repo, role, nil
}
