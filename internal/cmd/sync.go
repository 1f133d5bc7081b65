package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/theme"
	"github.com/udaan-tools/setsync/internal/ui"
)

// SyncCmd fetches, merges, commits and pushes
type SyncCmd struct {
	ProjectFlags
}

// PullCmd fetches and merges without pushing
type PullCmd struct {
	ProjectFlags
}

// Run executes the sync command
func (s *SyncCmd) Run(ctx context.Context, cli *CLI) error {
	return runCycle(ctx, cli, s.ProjectFlags, domain.ModeSync, "Synchronizing Set...")
}

// Run executes the pull command
func (p *PullCmd) Run(ctx context.Context, cli *CLI) error {
	return runCycle(ctx, cli, p.ProjectFlags, domain.ModePull, "Pulling Set...")
}

func runCycle(ctx context.Context, cli *CLI, flags ProjectFlags, mode domain.SyncMode, title string) error {
	repo, role, err := cli.openExisting(ctx, flags)
	if err != nil {
		return err
	}
	defer repo.Close()

	container := cli.Container
	var result *domain.SyncResult
	err = ui.RunWithProgress(ctx, title, container.Out, container.Interactive, func(ctx context.Context, r *ui.Reporter) error {
		return container.WithDisplay(r, func() error {
			svc := container.SyncService(repo, role, cli.remoteURL(flags), r)
			handle := svc.Start(ctx, mode)
			select {
			case <-handle.Done():
			case <-ctx.Done():
				handle.Cancel()
			}
			result = handle.Wait()
			if result.Err != nil {
				return result.Err
			}
			return nil
		})
	})
	if result == nil {
		return err
	}

	container.PlayOutcome(result)
	printResult(container.Out, result)
	if result.Err != nil {
		logging.Logger.Error("Sync failed", "error", result.Err, "kind", result.Err.Kind, "run_id", result.RunID)
		return result.Err
	}
	return nil
}

// printResult writes a one-line summary of a finished cycle
func printResult(w io.Writer, result *domain.SyncResult) {
	fmt.Fprintln(w, formatResult(result))
}

func formatResult(result *domain.SyncResult) string {
	if result.Err != nil {
		return theme.FailedStyle.Render(fmt.Sprintf("%s failed (%s)", modeVerb(result.Mode), result.Err.Kind))
	}

	var parts []string
	switch {
	case result.UpToDateSkip:
		parts = append(parts, "Already up to date")
	case result.Merge.Outcome == domain.MergeClean:
		parts = append(parts, "Merged remote changes "+shortHash(result.MergeCommit))
	case result.Merge.Outcome == domain.MergeUpToDate:
		parts = append(parts, "Local work already contains the remote")
	default:
		parts = append(parts, "Nothing to merge")
	}
	if result.Pushed {
		parts = append(parts, "pushed "+result.Branch)
	}
	return theme.DoneStyle.Render(strings.Join(parts, ", "))
}

func modeVerb(mode domain.SyncMode) string {
	if mode == domain.ModePull {
		return "Pull"
	}
	return "Sync"
}

func shortHash(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
