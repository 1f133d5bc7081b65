package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/theme"
)

// HistoryCmd shows journaled sync runs or recorded commits
type HistoryCmd struct {
	ProjectFlags
	All     bool `help:"Include every set, not only the one in --dir"`
	Commits bool `help:"Show recorded commits instead of sync runs"`
	Limit   int  `help:"Maximum number of rows (0 = unlimited)" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(ctx context.Context, cli *CLI) error {
	repoPath := h.Dir
	if h.All {
		repoPath = ""
	}
	now := time.Now()

	if h.Commits {
		records, err := cli.Container.Journal.ListCommitRecords(ctx, repoPath, h.Limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No commits recorded yet.")
			return nil
		}
		fmt.Println(renderCommitTable(records, h.All, now))
		return nil
	}

	runs, err := cli.Container.Journal.ListRuns(ctx, repoPath, h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No sync runs journaled yet.")
		return nil
	}
	fmt.Println(renderRunTable(runs, h.All, now))
	return nil
}

func newHistoryTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.MutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func renderRunTable(runs []domain.SyncRun, withPath bool, now time.Time) string {
	headers := []string{"When", "Mode", "Result", "Branch", "Merge", "Pushed", "Took"}
	if withPath {
		headers = append(headers, "Set")
	}
	t := newHistoryTable(headers...)

	for _, run := range runs {
		result := string(run.State)
		if run.ErrorKind != "" {
			result = fmt.Sprintf("%s (%s)", run.State, run.ErrorKind)
		}
		took := "-"
		if run.FinishedAt != nil {
			took = run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
		}
		pushed := "no"
		if run.Pushed {
			pushed = "yes"
		}
		row := []string{
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			string(run.Mode),
			result,
			run.Branch,
			string(run.MergeResult),
			pushed,
			took,
		}
		if withPath {
			row = append(row, run.RepoPath)
		}
		t.Row(row...)
	}
	return t.Render()
}

func renderCommitTable(records []domain.CommitRecord, withPath bool, now time.Time) string {
	headers := []string{"When", "Commit", "Email", "Ledger"}
	if withPath {
		headers = append(headers, "Set")
	}
	t := newHistoryTable(headers...)

	for _, rec := range records {
		ledger := "delivered"
		if !rec.Delivered {
			ledger = "not delivered"
			if rec.Error != "" {
				ledger += ": " + rec.Error
			}
		}
		row := []string{
			humanize.RelTime(rec.RecordedAt, now, "ago", "from now"),
			shortHash(rec.Hash),
			rec.Email,
			ledger,
		}
		if withPath {
			row = append(row, rec.RepoPath)
		}
		t.Row(row...)
	}
	return t.Render()
}
