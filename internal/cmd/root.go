package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`
	NoInput     bool             `help:"Never prompt; fail when a credential is needed" env:"SETSYNC_NO_INPUT"`

	AuthorEmail string `help:"Commit author email (overrides settings author_email)" env:"SETSYNC_AUTHOR_EMAIL"`
	AuthorName  string `help:"Commit author name (overrides settings author_name)" env:"SETSYNC_AUTHOR_NAME"`
	Password    string `help:"Account password exchanged for a repository token" env:"SETSYNC_PASSWORD"`
	Username    string `help:"Account username (overrides settings account_username)" env:"SETSYNC_USERNAME"`

	Clone    CloneCmd    `cmd:"clone" help:"Clone a set from its remote"`
	Commit   CommitCmd   `cmd:"commit" help:"Commit all changes in the set"`
	Describe DescribeCmd `cmd:"describe" help:"List the files a commit changed in your output directory"`
	History  HistoryCmd  `cmd:"history" help:"Show journaled syncs and recorded commits"`
	Init     InitCmd     `cmd:"init" help:"Open a set, putting it under version control if needed"`
	Pull     PullCmd     `cmd:"pull" help:"Fetch and merge remote changes without pushing"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings (meta, show)"`
	Status   StatusCmd   `cmd:"status" help:"Compare the set with its remote"`
	Sync     SyncCmd     `cmd:"sync" help:"Fetch, merge, commit and push" default:"withargs"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// ProjectFlags selects the set a command works on
type ProjectFlags struct {
	Dir       string `help:"Set directory" short:"C" default:"." type:"path"`
	RemoteURL string `help:"Remote used when the set has no origin (overrides settings remote_url)" env:"SETSYNC_REMOTE_URL"`
	Role      string `help:"Corrector or Verifier (overrides settings role)" env:"SETSYNC_ROLE"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SETSYNC_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SETSYNC_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.AuthorName == "" {
			c.AuthorName = c.settings.AuthorName
		}
		if c.AuthorEmail == "" {
			c.AuthorEmail = c.settings.AuthorEmail
		}
		if c.Username == "" {
			c.Username = c.settings.AccountUsername
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child git processes log into the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SETSYNC_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SETSYNC_DEBUG_FILE", logFilePath)
		}
	}

	// Container is created after logging so gorm's logger has a target
	container, err := NewContainer(c.settings, ContainerOptions{
		Author:      domain.Author{Email: c.AuthorEmail, Name: c.AuthorName},
		Interactive: c.interactive(),
		Login:       domain.AccountLogin{Password: c.Password, Username: c.Username},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) interactive() bool {
	if c.NoInput {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// role resolves the role flag against settings
func (c *CLI) role(p ProjectFlags) (domain.Role, error) {
	value := p.Role
	if value == "" && c.settings != nil {
		value = c.settings.Role
	}
	return domain.ParseRole(value)
}

// remoteURL resolves the fallback remote url against settings
func (c *CLI) remoteURL(p ProjectFlags) string {
	if p.RemoteURL != "" {
		return p.RemoteURL
	}
	if c.settings != nil {
		return c.settings.RemoteURL
	}
	return ""
}
