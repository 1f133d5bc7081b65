package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/theme"
)

// StatusCmd compares the set with its remote tracking branch
type StatusCmd struct {
	ProjectFlags
}

// Run executes the status command
func (s *StatusCmd) Run(ctx context.Context, cli *CLI) error {
	repo, _, err := cli.openExisting(ctx, s.ProjectFlags)
	if err != nil {
		return err
	}
	defer repo.Close()

	status, err := cli.Container.Projects.Status(ctx, repo)
	if err != nil {
		return err
	}
	fmt.Print(renderStatus(repo.Path(), status, time.Now()))
	return nil
}

func renderStatus(path string, status *domain.SyncStatus, now time.Time) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(theme.ValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Set", path)
	row("Branch", status.Branch)
	row("Local", shortHash(status.LocalID))
	if status.RemoteRef == "" {
		row("Remote", theme.MutedStyle.Render("no tracking branch"))
	} else {
		row("Remote", fmt.Sprintf("%s (%s)", shortHash(status.RemoteID), status.RemoteRef))
		row("Tracking", describeDivergence(status.Ahead, status.Behind))
	}

	if status.LastRun == nil {
		row("Last sync", theme.MutedStyle.Render("never"))
	} else {
		row("Last sync", describeRun(*status.LastRun, now))
	}
	return b.String()
}

func describeDivergence(ahead, behind int) string {
	switch {
	case ahead == 0 && behind == 0:
		return "up to date"
	case behind == 0:
		return fmt.Sprintf("%d ahead", ahead)
	case ahead == 0:
		return fmt.Sprintf("%d behind", behind)
	default:
		return fmt.Sprintf("%d ahead, %d behind", ahead, behind)
	}
}

func describeRun(run domain.SyncRun, now time.Time) string {
	when := humanize.RelTime(run.StartedAt, now, "ago", "from now")
	if run.ErrorKind != "" {
		return theme.FailedStyle.Render(fmt.Sprintf("%s %s (%s)", run.Mode, run.State, run.ErrorKind)) + " " + when
	}
	return theme.DoneStyle.Render(fmt.Sprintf("%s %s", run.Mode, run.State)) + " " + when
}
