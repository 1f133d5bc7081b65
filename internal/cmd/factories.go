package cmd

import (
	"errors"
	"io"
	"os"
	"sync"

	adapterfs "github.com/udaan-tools/setsync/internal/adapters/fs"
	adaptergit "github.com/udaan-tools/setsync/internal/adapters/git"
	adapterprompt "github.com/udaan-tools/setsync/internal/adapters/prompt"
	adaptersound "github.com/udaan-tools/setsync/internal/adapters/sound"
	adapterstorage "github.com/udaan-tools/setsync/internal/adapters/storage"
	adapterwebapi "github.com/udaan-tools/setsync/internal/adapters/webapi"
	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
	"github.com/udaan-tools/setsync/internal/services"
	"github.com/udaan-tools/setsync/internal/ui"
)

// ContainerOptions carries what the command line resolved
type ContainerOptions struct {
	Author      domain.Author
	Interactive bool
	Login       domain.AccountLogin
	// Out receives progress and notices; defaults to stderr
	Out io.Writer
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Guard    ports.PermissionGuard
	Journal  ports.JournalRepository
	Notifier ports.Notifier
	Opener   ports.RepositoryOpener
	Prompter ports.CredentialPrompter
	Sound    ports.SoundPlayer

	// Services
	Projects *services.ProjectService

	Interactive bool
	Out         io.Writer

	author      domain.Author
	credentials *services.CredentialProvider
	ledger      ports.CommitLedger
	mu          sync.Mutex
	recorders   []*services.HistoryRecorder
	settings    *config.Settings
	terminal    *terminal
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, opts ContainerOptions) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}

	journal, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	timeouts := settings.Timeouts()
	opener := adaptergit.NewOpener(adaptergit.Options{
		Identity:        opts.Author,
		KnownHostsFile:  settings.SSHKnownHosts,
		MaxAuthAttempts: settings.AuthAttempts(),
	})
	term := &terminal{}
	prompter := &terminalPrompter{inner: adapterprompt.NewPrompter(opts.Interactive), terminal: term}

	var sound ports.SoundPlayer
	if settings.SoundEnabled() {
		sound = adaptersound.NewPlayer()
	}

	var exchanger ports.CredentialExchanger
	if settings.CredentialEndpoint != "" {
		exchanger = adapterwebapi.NewCredentialExchanger(settings.CredentialEndpoint, adapterwebapi.ClientOptions{
			Timeout: timeouts.Credential,
		})
	}

	var ledger ports.CommitLedger
	if settings.LedgerEndpoint != "" {
		ledger = adapterwebapi.NewCommitLedger(settings.LedgerEndpoint, adapterwebapi.ClientOptions{
			InsecureSkipVerify: settings.LedgerInsecureSkipVerify != nil && *settings.LedgerInsecureSkipVerify,
			Timeout:            timeouts.Ledger,
		})
	}

	credentials := services.NewCredentialProvider(domain.NewCredentialStore(), exchanger, prompter, opts.Login, timeouts.Credential)

	return &Container{
		Guard:       adapterfs.NewPermissionGuard(),
		Journal:     journal,
		Notifier:    &terminalNotifier{inner: adapterprompt.NewNotifier(opts.Out, sound, opts.Interactive), terminal: term},
		Opener:      opener,
		Prompter:    prompter,
		Sound:       sound,
		Projects:    services.NewProjectService(opener, journal, opts.Author, settings.RemoteName),
		Interactive: opts.Interactive,
		Out:         opts.Out,
		author:      opts.Author,
		credentials: credentials,
		ledger:      ledger,
		settings:    settings,
		terminal:    term,
	}, nil
}

// Credentials returns the session's credential provider
func (c *Container) Credentials() *services.CredentialProvider {
	return c.credentials
}

// Recorder returns a history recorder bound to repoPath. Close waits for
// everything it started.
func (c *Container) Recorder(repoPath string) *services.HistoryRecorder {
	r := services.NewHistoryRecorder(c.ledger, c.Journal, repoPath, c.settings.Timeouts().Ledger)
	c.mu.Lock()
	c.recorders = append(c.recorders, r)
	c.mu.Unlock()
	return r
}

// SyncService wires a sync engine for one opened set. reporter may be nil.
func (c *Container) SyncService(repo ports.VersionControl, role domain.Role, remoteURL string, reporter *ui.Reporter) *services.SyncService {
	opts := services.SyncOptions{
		Author:       c.author,
		MergeMessage: c.settings.MergeCommitMessage(),
		RemoteName:   c.settings.RemoteName,
		RemoteURL:    remoteURL,
		Role:         role,
		Timeouts:     c.settings.Timeouts(),
	}
	if reporter != nil {
		opts.Observer = reporter.Transition
		opts.Progress = reporter
	}
	return services.NewSyncService(repo, c.credentials, c.Guard, c.Recorder(repo.Path()), c.Journal, c.Notifier, opts)
}

// WithDisplay routes prompts through reporter while fn runs
func (c *Container) WithDisplay(reporter *ui.Reporter, fn func() error) error {
	defer c.terminal.attach(reporter)()
	return fn()
}

// PlayOutcome plays the sound matching a finished sync. Conflicts are
// announced by the notifier.
func (c *Container) PlayOutcome(result *domain.SyncResult) {
	if c.Sound == nil || result == nil {
		return
	}
	event := ports.SoundEventSynced
	if !result.Succeeded() {
		if result.Err != nil && result.Err.Kind == domain.KindMergeConflict {
			return
		}
		event = ports.SoundEventFailed
	}
	if err := c.Sound.PlaySoundForEvent(event); err != nil {
		logging.Logger.Debug("Failed to play sound", "error", err, "event", event)
	}
}

// Close waits for pending ledger posts and closes the journal
func (c *Container) Close() error {
	c.mu.Lock()
	recorders := c.recorders
	c.mu.Unlock()
	for _, r := range recorders {
		r.Wait()
	}

	var errs []error
	if c.Journal != nil {
		errs = append(errs, c.Journal.Close())
	}
	return errors.Join(errs...)
}
