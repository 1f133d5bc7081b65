package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/udaan-tools/setsync/internal/cmd"
	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Keeps correction sets in sync"

func main() {
	info := ui.VersionInfo{
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Tagline:   Tagline,
		Version:   Version,
	}
	ui.SetVersionInfo(info)

	// Load settings from ~/.setsync/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	kctx := kong.Parse(&cli,
		kong.Name("setsync"),
		kong.Description(Tagline),
		kong.Vars{
			"version": info.String(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	runErr := kctx.Run()
	if err := cli.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(exitCode(runErr))
	}
}

// exitCode maps a failed sync to the magnitude of its legacy code
func exitCode(err error) int {
	var syncErr *domain.SyncError
	if errors.As(err, &syncErr) {
		return -syncErr.Kind.Code()
	}
	return 1
}
