package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// SyncOptions configures a SyncService
type SyncOptions struct {
	Author       domain.Author
	MergeMessage string
	// Observer receives every state transition; it runs on the cycle goroutine
	Observer func(domain.Transition)
	// Progress receives remote transfer output; may be nil
	Progress   io.Writer
	RemoteName string
	// RemoteURL backs the anonymous remote used when RemoteName is not configured
	RemoteURL string
	Role      domain.Role
	Timeouts  config.Timeouts
}

// SyncService runs the fetch, merge, commit and push cycle for one
// repository. At most one cycle runs at a time.
type SyncService struct {
	credentials *CredentialProvider
	guard       ports.PermissionGuard
	journal     ports.SyncRunWriter
	mu          sync.Mutex
	notifier    ports.Notifier
	opts        SyncOptions
	recorder    *HistoryRecorder
	repo        ports.VersionControl
}

// NewSyncService creates a new SyncService. journal, notifier and recorder
// may be nil.
func NewSyncService(
	repo ports.VersionControl,
	credentials *CredentialProvider,
	guard ports.PermissionGuard,
	recorder *HistoryRecorder,
	journal ports.SyncRunWriter,
	notifier ports.Notifier,
	opts SyncOptions,
) *SyncService {
	if opts.RemoteName == "" {
		opts.RemoteName = domain.DefaultRemoteName
	}
	if opts.MergeMessage == "" {
		opts.MergeMessage = config.DefaultMergeMessage
	}
	return &SyncService{
		credentials: credentials,
		guard:       guard,
		journal:     journal,
		notifier:    notifier,
		opts:        opts,
		recorder:    recorder,
		repo:        repo,
	}
}

// Run executes one cycle on the calling goroutine
func (s *SyncService) Run(ctx context.Context, mode domain.SyncMode) *domain.SyncResult {
	return s.run(ctx, mode, nil)
}

// Start executes one cycle on its own goroutine
func (s *SyncService) Start(ctx context.Context, mode domain.SyncMode) *SyncHandle {
	ctx, cancel := context.WithCancel(ctx)
	h := &SyncHandle{
		cancel: cancel,
		done:   make(chan struct{}),
		state:  domain.StateIdle,
	}
	go func() {
		defer cancel()
		result := s.run(ctx, mode, h.setState)
		h.finish(result)
	}()
	return h
}

func (s *SyncService) run(ctx context.Context, mode domain.SyncMode, onState func(domain.SyncState)) *domain.SyncResult {
	if mode == "" {
		mode = domain.ModeSync
	}
	c := &cycle{
		onState: onState,
		result: &domain.SyncResult{
			Mode:      mode,
			RunID:     uuid.NewString(),
			StartedAt: time.Now(),
			State:     domain.StateIdle,
		},
		svc: s,
	}

	if !s.mu.TryLock() {
		logging.Logger.Warn("Sync already running", "path", s.repo.Path())
		c.fail(domain.KindUnknown, domain.ErrSyncInProgress)
		return c.finish(ctx)
	}
	defer s.mu.Unlock()

	logging.Logger.Info("Sync cycle starting", "mode", mode, "path", s.repo.Path(), "run_id", c.result.RunID)
	c.execute(ctx)
	return c.finish(ctx)
}

// cycle is the state of a single run
type cycle struct {
	authUsed bool
	onState  func(domain.SyncState)
	result   *domain.SyncResult
	svc      *SyncService
}

func (c *cycle) execute(ctx context.Context) {
	s := c.svc

	unlock, err := s.repo.TryLock(ctx)
	if err != nil {
		c.fail(domain.KindOf(err), err)
		return
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release repository lock", "error", err)
		}
	}()

	remote, ok := c.lookupRemote(ctx)
	if !ok {
		return
	}
	if !c.fetch(ctx, remote) {
		return
	}

	branch, localID, remoteID, ok := c.diffCheck(ctx, remote)
	if !ok {
		return
	}
	if localID == remoteID {
		c.result.UpToDateSkip = true
		c.transition(domain.StateDone, "already up to date")
		return
	}

	if remoteID != "" {
		if !c.merge(ctx, localID, remoteID) {
			return
		}
	}

	if c.result.Mode == domain.ModePull {
		c.transition(domain.StateDone, "merged into working copy")
		return
	}

	if c.push(ctx, remote, branch) {
		c.transition(domain.StateDone, "synced")
	}
}

func (c *cycle) lookupRemote(ctx context.Context) (*domain.Remote, bool) {
	s := c.svc
	c.transition(domain.StateRemoteLookup, s.opts.RemoteName)

	remote, err := s.repo.LookupRemote(ctx, s.opts.RemoteName)
	if err == nil {
		return remote, true
	}
	if !errors.Is(err, domain.ErrRemoteNotFound) {
		c.fail(domain.KindRemoteUnreachable, fmt.Errorf("%w: %v", domain.ErrRemoteUnreachable, err))
		return nil, false
	}
	if s.opts.RemoteURL == "" {
		c.fail(domain.KindRemoteUnreachable, fmt.Errorf("%w: remote %q is not configured and no remote url is set", domain.ErrRemoteUnreachable, s.opts.RemoteName))
		return nil, false
	}

	logging.Logger.Info("Remote not configured, using anonymous remote", "name", s.opts.RemoteName, "url", s.opts.RemoteURL)
	remote, err = s.repo.CreateAnonymousRemote(ctx, s.opts.RemoteName, s.opts.RemoteURL)
	if err != nil {
		c.fail(domain.KindRemoteUnreachable, fmt.Errorf("%w: %v", domain.ErrRemoteUnreachable, err))
		return nil, false
	}
	return remote, true
}

func (c *cycle) fetch(ctx context.Context, remote *domain.Remote) bool {
	s := c.svc
	c.transition(domain.StateFetching, remote.Name)

	opCtx, cancel := withTimeout(ctx, s.opts.Timeouts.Fetch)
	defer cancel()

	err := s.repo.Fetch(opCtx, remote, c.auth, s.opts.Progress)
	if err != nil {
		c.fail(kindFor(ctx, opCtx, err), err)
		return false
	}
	c.markValid()
	return true
}

// diffCheck returns an empty remoteID when the remote has no tracking ref
// for the branch yet
func (c *cycle) diffCheck(ctx context.Context, remote *domain.Remote) (branch, localID, remoteID string, ok bool) {
	s := c.svc
	c.transition(domain.StateDiffCheck, "")

	text, err := s.repo.ReadConfigText(ctx)
	if err != nil {
		c.fail(domain.KindConfigParseFailure, fmt.Errorf("%w: %v", domain.ErrConfigParseFailure, err))
		return "", "", "", false
	}
	branch, err = domain.ParseBranchName(text)
	if err != nil {
		c.fail(domain.KindConfigParseFailure, err)
		return "", "", "", false
	}
	c.result.Branch = branch

	localID, err = s.repo.HeadID(ctx)
	if err != nil {
		c.fail(domain.KindUnknown, err)
		return "", "", "", false
	}
	c.result.LocalID = localID

	remoteID, err = s.repo.ResolveRef(ctx, domain.RemoteTrackingRef(remote.Name, branch))
	if err != nil {
		remoteID, err = s.repo.ResolveRef(ctx, domain.RemoteTrackingRef(remote.Name, "HEAD"))
	}
	if err != nil {
		logging.Logger.Info("Remote has no tracking ref for branch", "branch", branch, "remote", remote.Name)
		remoteID = ""
	}
	c.result.RemoteID = remoteID

	logging.Logger.Debug("Diff check", "branch", branch, "local", localID, "remote", remoteID)
	return branch, localID, remoteID, true
}

func (c *cycle) merge(ctx context.Context, localID, remoteID string) bool {
	s := c.svc
	c.transition(domain.StateMerging, remoteID)

	contained, err := s.repo.IsAncestor(ctx, remoteID, localID)
	if err != nil {
		c.fail(kindFor(ctx, ctx, err), err)
		return false
	}
	if contained {
		logging.Logger.Info("Local branch already contains remote changes")
		c.result.Merge = domain.MergeResult{Outcome: domain.MergeUpToDate}
		return true
	}

	project := domain.Project{Path: s.repo.Path(), Role: s.opts.Role}
	var merge domain.MergeResult
	err = s.guard.WithWritable(ctx, project.SyncDirectory(), func() error {
		var mergeErr error
		merge, mergeErr = s.repo.Merge(ctx, remoteID)
		return mergeErr
	})
	c.result.Merge = merge
	if err != nil {
		c.fail(kindFor(ctx, ctx, err), err)
		return false
	}

	switch merge.Outcome {
	case domain.MergeConflicted:
		if s.notifier != nil {
			if err := s.notifier.NotifyConflict(ctx, merge.ConflictedPaths); err != nil {
				logging.Logger.Warn("Conflict notification failed", "error", err)
			}
		}
		c.fail(domain.KindMergeConflict, fmt.Errorf("%w: %s", domain.ErrMergeConflict, strings.Join(merge.ConflictedPaths, ", ")))
		return false
	case domain.MergeFailed:
		if err := s.repo.CleanupState(ctx); err != nil {
			logging.Logger.Warn("Failed to clean merge state", "error", err)
		}
		c.fail(domain.KindUnknown, fmt.Errorf("merge failed: %s", merge.Reason))
		return false
	case domain.MergeUpToDate:
		return true
	}

	return c.commit(ctx, remoteID)
}

func (c *cycle) commit(ctx context.Context, remoteID string) bool {
	s := c.svc
	c.transition(domain.StateCommitting, "")

	hash, err := s.repo.CommitMerge(ctx, remoteID, s.opts.MergeMessage, s.opts.Author)
	if err != nil {
		c.fail(kindFor(ctx, ctx, err), err)
		return false
	}
	c.result.MergeCommit = hash

	if err := s.repo.CleanupState(ctx); err != nil {
		logging.Logger.Warn("Failed to clean merge state", "error", err)
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, hash, s.opts.Author.Email)
	}
	return true
}

func (c *cycle) push(ctx context.Context, remote *domain.Remote, branch string) bool {
	s := c.svc
	c.transition(domain.StatePushing, branch)

	refSpec, err := domain.PushRefSpec(branch)
	if err != nil {
		c.fail(domain.KindConfigParseFailure, err)
		return false
	}

	opCtx, cancel := withTimeout(ctx, s.opts.Timeouts.Push)
	defer cancel()

	if err := s.repo.Push(opCtx, remote, refSpec, c.auth, s.opts.Progress); err != nil {
		c.fail(kindFor(ctx, opCtx, err), err)
		return false
	}
	c.markValid()
	c.result.Pushed = true
	return true
}

// auth answers credential challenges raised by fetch and push
func (c *cycle) auth(ctx context.Context, retryCount int) (domain.Credential, error) {
	if c.svc.credentials == nil {
		return domain.Credential{}, domain.ErrAuthCancelled
	}
	c.authUsed = true
	return c.svc.credentials.Acquire(ctx, retryCount)
}

func (c *cycle) markValid() {
	if c.authUsed && c.svc.credentials != nil {
		c.svc.credentials.MarkValid()
	}
}

func (c *cycle) transition(to domain.SyncState, message string) {
	t := domain.Transition{
		At:      time.Now(),
		From:    c.result.State,
		Message: message,
		To:      to,
	}
	c.result.State = to
	logging.Logger.Info("Sync state", "from", t.From, "to", t.To, "message", message)

	if c.onState != nil {
		c.onState(to)
	}
	if c.svc.opts.Observer != nil {
		c.svc.opts.Observer(t)
	}
}

func (c *cycle) fail(kind domain.ErrorKind, err error) {
	if kind == "" {
		kind = domain.KindUnknown
	}
	c.result.Err = domain.NewSyncError(c.result.State, kind, err)
	logging.Logger.Error("Sync failed", "error", err, "kind", kind, "state", c.result.State)
	c.transition(domain.StateFailed, c.result.Err.Error())
}

func (c *cycle) finish(ctx context.Context) *domain.SyncResult {
	c.result.FinishedAt = time.Now()
	if c.svc.journal != nil {
		run := domain.RunFromResult(c.svc.repo.Path(), c.result)
		if err := c.svc.journal.SaveRun(context.WithoutCancel(ctx), run); err != nil {
			logging.Logger.Warn("Failed to journal sync run", "error", err, "run_id", run.ID)
		}
	}
	logging.Logger.Info("Sync cycle finished", "code", c.result.Code(), "state", c.result.State, "run_id", c.result.RunID)
	return c.result
}

// kindFor classifies an operation error, preferring cancellation and
// timeouts of the surrounding contexts
func kindFor(parent, op context.Context, err error) domain.ErrorKind {
	switch {
	case errors.Is(parent.Err(), context.Canceled):
		return domain.KindCancelled
	case errors.Is(op.Err(), context.DeadlineExceeded):
		return domain.KindTimeout
	}
	return domain.KindOf(err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// SyncHandle tracks a cycle started with Start
type SyncHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
	result *domain.SyncResult
	state  domain.SyncState
}

// Cancel aborts the cycle; it finishes in StateFailed with KindCancelled
func (h *SyncHandle) Cancel() {
	h.cancel()
}

// Done is closed when the cycle finished
func (h *SyncHandle) Done() <-chan struct{} {
	return h.done
}

// Result returns the final result, or nil while the cycle is running
func (h *SyncHandle) Result() *domain.SyncResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

// State returns the current state
func (h *SyncHandle) State() domain.SyncState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Wait blocks until the cycle finished and returns its result
func (h *SyncHandle) Wait() *domain.SyncResult {
	<-h.done
	return h.Result()
}

func (h *SyncHandle) setState(state domain.SyncState) {
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()
}

func (h *SyncHandle) finish(result *domain.SyncResult) {
	h.mu.Lock()
	h.result = result
	h.state = result.State
	h.mu.Unlock()
	close(h.done)
}
