package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/ports"
	portsmocks "github.com/udaan-tools/setsync/internal/ports/mocks"
)

const (
	testRepoPath  = "/sets/book"
	testRemoteURL = "https://example.com/sets/book.git"
	testGitConfig = "[core]\n\tbare = false\n[remote \"origin\"]\n\turl = https://example.com/sets/book.git\n[branch \"main\"]\n\tremote = origin\n\tmerge = refs/heads/main\n"
)

var (
	testAuthor = domain.Author{Email: "verifier@example.com", Name: "Verifier"}
	testOrigin = &domain.Remote{Name: "origin", URL: testRemoteURL}
)

type syncFixture struct {
	guard    *portsmocks.MockPermissionGuard
	journal  *portsmocks.MockJournalRepository
	mu       sync.Mutex
	notifier *portsmocks.MockNotifier
	repo     *portsmocks.MockVersionControl
	runs     []domain.SyncRun
	unlocked bool
}

func newSyncFixture(t *testing.T) *syncFixture {
	f := &syncFixture{
		guard:    portsmocks.NewMockPermissionGuard(t),
		journal:  portsmocks.NewMockJournalRepository(t),
		notifier: portsmocks.NewMockNotifier(t),
		repo:     portsmocks.NewMockVersionControl(t),
	}
	f.repo.EXPECT().Path().Return(testRepoPath).Maybe()
	f.journal.EXPECT().SaveRun(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, run domain.SyncRun) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.runs = append(f.runs, run)
			return nil
		}).Maybe()
	return f
}

func (f *syncFixture) expectLock() {
	f.repo.EXPECT().TryLock(mock.Anything).Return(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unlocked = true
		return nil
	}, nil).Once()
}

func (f *syncFixture) expectThroughDiffCheck(localID, remoteID string) {
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).Return(nil).Once()
	f.expectDiffCheck(localID, remoteID)
}

func (f *syncFixture) expectDiffCheck(localID, remoteID string) {
	f.repo.EXPECT().ReadConfigText(mock.Anything).Return(testGitConfig, nil).Once()
	f.repo.EXPECT().HeadID(mock.Anything).Return(localID, nil).Once()
	f.repo.EXPECT().ResolveRef(mock.Anything, "refs/remotes/origin/main").Return(remoteID, nil).Once()
}

// expectGuardedMerge runs the merge body inside the guard and reports
// whether permissions were restored afterwards
func (f *syncFixture) expectGuardedMerge(result domain.MergeResult) *bool {
	restored := new(bool)
	f.guard.EXPECT().WithWritable(mock.Anything, "/sets/book/CorrectorOutput", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, body func() error) error {
			defer func() { *restored = true }()
			return body()
		}).Once()
	f.repo.EXPECT().Merge(mock.Anything, "remote2").Return(result, nil).Once()
	return restored
}

func (f *syncFixture) service(opts SyncOptions) *SyncService {
	if opts.Role == "" {
		opts.Role = domain.RoleVerifier
	}
	if opts.Author == (domain.Author{}) {
		opts.Author = testAuthor
	}
	return NewSyncService(f.repo, nil, f.guard, nil, f.journal, f.notifier, opts)
}

func (f *syncFixture) lastRun(t *testing.T) domain.SyncRun {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.runs)
	return f.runs[len(f.runs)-1]
}

func TestSyncService_EqualIDsFinishWithoutMergeOrPush(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("abc123", "abc123")

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	assert.Equal(t, domain.StateDone, result.State)
	assert.True(t, result.UpToDateSkip)
	assert.Nil(t, result.Err)
	assert.Equal(t, 0, result.Code())
	assert.Equal(t, "main", result.Branch)
	f.repo.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CommitMerge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.guard.AssertNotCalled(t, "WithWritable", mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, f.unlocked)

	run := f.lastRun(t)
	assert.Equal(t, domain.StateDone, run.State)
	assert.Equal(t, testRepoPath, run.RepoPath)
	assert.Equal(t, result.RunID, run.ID)
}

func TestSyncService_CleanMergeCommitsAndPushes(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(false, nil).Once()
	restored := f.expectGuardedMerge(domain.MergeResult{Outcome: domain.MergeClean})
	f.repo.EXPECT().CommitMerge(mock.Anything, "remote2", config.DefaultMergeMessage, testAuthor).Return("merge3", nil).Once()
	f.repo.EXPECT().CleanupState(mock.Anything).Return(nil).Once()
	f.repo.EXPECT().Push(mock.Anything, testOrigin, "refs/heads/main:refs/heads/main", mock.Anything, mock.Anything).Return(nil).Once()

	var states []domain.SyncState
	result := f.service(SyncOptions{
		Observer: func(tr domain.Transition) { states = append(states, tr.To) },
	}).Run(context.Background(), domain.ModeSync)

	require.Nil(t, result.Err)
	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, "merge3", result.MergeCommit)
	assert.True(t, result.Pushed)
	assert.True(t, *restored)
	assert.Equal(t, []domain.SyncState{
		domain.StateRemoteLookup,
		domain.StateFetching,
		domain.StateDiffCheck,
		domain.StateMerging,
		domain.StateCommitting,
		domain.StatePushing,
		domain.StateDone,
	}, states)
}

func TestSyncService_ConflictFailsWithoutCommitOrPush(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(false, nil).Once()
	paths := []string{"CorrectorOutput/page3.html"}
	restored := f.expectGuardedMerge(domain.MergeResult{ConflictedPaths: paths, Outcome: domain.MergeConflicted})
	f.notifier.EXPECT().NotifyConflict(mock.Anything, paths).Return(nil).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	assert.Equal(t, domain.StateFailed, result.State)
	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindMergeConflict, result.Err.Kind)
	assert.Equal(t, domain.StateMerging, result.Err.State)
	assert.ErrorIs(t, result.Err, domain.ErrMergeConflict)
	assert.Equal(t, -5, result.Code())
	assert.True(t, *restored, "permissions restored after a conflicted merge")
	assert.Equal(t, domain.MergeConflicted, result.Merge.Outcome)
	f.repo.AssertNotCalled(t, "CommitMerge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CleanupState", mock.Anything)
	f.repo.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	run := f.lastRun(t)
	assert.Equal(t, domain.KindMergeConflict, run.ErrorKind)
	assert.Equal(t, domain.MergeConflicted, run.MergeResult)
}

func TestSyncService_LocalContainsRemoteSkipsToPush(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(true, nil).Once()
	f.repo.EXPECT().Push(mock.Anything, testOrigin, "refs/heads/main:refs/heads/main", mock.Anything, mock.Anything).Return(nil).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, domain.MergeUpToDate, result.Merge.Outcome)
	assert.Empty(t, result.MergeCommit)
	assert.True(t, result.Pushed)
	f.guard.AssertNotCalled(t, "WithWritable", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncService_PullCommitsMergeWithoutPushing(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(false, nil).Once()
	f.expectGuardedMerge(domain.MergeResult{Outcome: domain.MergeClean})
	f.repo.EXPECT().CommitMerge(mock.Anything, "remote2", "Pull from set", testAuthor).Return("merge3", nil).Once()
	f.repo.EXPECT().CleanupState(mock.Anything).Return(nil).Once()

	result := f.service(SyncOptions{MergeMessage: "Pull from set"}).Run(context.Background(), domain.ModePull)

	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, domain.ModePull, result.Mode)
	assert.Equal(t, "merge3", result.MergeCommit)
	assert.False(t, result.Pushed)
	f.repo.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncService_MergeFailureCleansUp(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(false, nil).Once()
	f.expectGuardedMerge(domain.MergeResult{Outcome: domain.MergeFailed, Reason: "local changes would be overwritten"})
	f.repo.EXPECT().CleanupState(mock.Anything).Return(nil).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindUnknown, result.Err.Kind)
	assert.Contains(t, result.Err.Error(), "local changes would be overwritten")
}

func TestSyncService_PushRejected(t *testing.T) {
	f := newSyncFixture(t)
	f.expectThroughDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(true, nil).Once()
	f.repo.EXPECT().Push(mock.Anything, testOrigin, mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: non-fast-forward update", domain.ErrPushRejected)).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindPushRejected, result.Err.Kind)
	assert.Equal(t, domain.StatePushing, result.Err.State)
	assert.False(t, result.Pushed)
}

func TestSyncService_ConfigWithoutBranchFails(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.EXPECT().ReadConfigText(mock.Anything).Return("[core]\n\tbare = false\n", nil).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindConfigParseFailure, result.Err.Kind)
	assert.Equal(t, domain.StateDiffCheck, result.Err.State)
	assert.Equal(t, -7, result.Code())
}

func TestSyncService_MissingTrackingRefFallsBackToRemoteHEAD(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.EXPECT().ReadConfigText(mock.Anything).Return(testGitConfig, nil).Once()
	f.repo.EXPECT().HeadID(mock.Anything).Return("abc123", nil).Once()
	f.repo.EXPECT().ResolveRef(mock.Anything, "refs/remotes/origin/main").Return("", fmt.Errorf("reference not found")).Once()
	f.repo.EXPECT().ResolveRef(mock.Anything, "refs/remotes/origin/HEAD").Return("abc123", nil).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	assert.Equal(t, domain.StateDone, result.State)
	assert.True(t, result.UpToDateSkip)
}

func TestSyncService_AnonymousRemoteWhenOriginMissing(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	anonymous := &domain.Remote{Anonymous: true, Name: "origin", URL: testRemoteURL}
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(nil, fmt.Errorf("%w: origin", domain.ErrRemoteNotFound)).Once()
	f.repo.EXPECT().CreateAnonymousRemote(mock.Anything, "origin", testRemoteURL).Return(anonymous, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, anonymous, mock.Anything, mock.Anything).Return(domain.ErrAuthRejected).Once()

	result := f.service(SyncOptions{RemoteURL: testRemoteURL}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindAuthRejected, result.Err.Kind)
	assert.Equal(t, domain.StateFetching, result.Err.State)
}

func TestSyncService_NoRemoteAtAll(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(nil, domain.ErrRemoteNotFound).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindRemoteUnreachable, result.Err.Kind)
	assert.ErrorIs(t, result.Err, domain.ErrRemoteUnreachable)
}

func TestSyncService_FetchTimeout(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).
		RunAndReturn(blockUntilDone).Once()

	result := f.service(SyncOptions{Timeouts: config.Timeouts{Fetch: 20 * time.Millisecond}}).Run(context.Background(), domain.ModeSync)

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindTimeout, result.Err.Kind)
	assert.Equal(t, -9, result.Code())
}

func TestSyncService_LockHeldElsewhere(t *testing.T) {
	f := newSyncFixture(t)
	f.repo.EXPECT().TryLock(mock.Anything).Return(nil, domain.ErrSyncInProgress).Once()

	result := f.service(SyncOptions{}).Run(context.Background(), domain.ModeSync)

	assert.Equal(t, domain.StateFailed, result.State)
	require.NotNil(t, result.Err)
	assert.ErrorIs(t, result.Err, domain.ErrSyncInProgress)
	f.repo.AssertNotCalled(t, "LookupRemote", mock.Anything, mock.Anything)
}

func blockUntilDone(ctx context.Context, _ *domain.Remote, _ ports.AuthCallback, _ io.Writer) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestSyncService_StartCanBeCancelled(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).RunAndReturn(blockUntilDone).Once()

	h := f.service(SyncOptions{}).Start(context.Background(), domain.ModeSync)

	assert.Eventually(t, func() bool { return h.State() == domain.StateFetching }, time.Second, 5*time.Millisecond)
	assert.Nil(t, h.Result())

	h.Cancel()
	result := h.Wait()

	require.NotNil(t, result.Err)
	assert.Equal(t, domain.KindCancelled, result.Err.Kind)
	assert.Equal(t, domain.StateFailed, h.State())
	assert.True(t, f.unlocked)
	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestSyncService_SecondCycleWhileRunningIsRejected(t *testing.T) {
	f := newSyncFixture(t)
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).RunAndReturn(blockUntilDone).Once()
	svc := f.service(SyncOptions{})

	h := svc.Start(context.Background(), domain.ModeSync)
	assert.Eventually(t, func() bool { return h.State() == domain.StateFetching }, time.Second, 5*time.Millisecond)

	second := svc.Run(context.Background(), domain.ModeSync)

	require.NotNil(t, second.Err)
	assert.ErrorIs(t, second.Err, domain.ErrSyncInProgress)

	h.Cancel()
	h.Wait()
}

func TestSyncService_CredentialIsReusedAfterFetchSucceeds(t *testing.T) {
	f := newSyncFixture(t)
	exchanger := portsmocks.NewMockCredentialExchanger(t)
	prompter := portsmocks.NewMockCredentialPrompter(t)
	login := domain.AccountLogin{Password: "pw", Username: "verifier"}
	token := domain.Credential{Token: "ghp_token", Username: "set-bot"}
	exchanger.EXPECT().Exchange(mock.Anything, login).Return(token, nil).Once()

	store := domain.NewCredentialStore()
	credentials := NewCredentialProvider(store, exchanger, prompter, login, time.Second)

	// Fetch is challenged once; push reuses the validated credential
	f.expectLock()
	f.repo.EXPECT().LookupRemote(mock.Anything, "origin").Return(testOrigin, nil).Once()
	f.repo.EXPECT().Fetch(mock.Anything, testOrigin, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Remote, auth ports.AuthCallback, _ io.Writer) error {
			cred, err := auth(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, token, cred)
			return nil
		}).Once()
	f.expectDiffCheck("local1", "remote2")
	f.repo.EXPECT().IsAncestor(mock.Anything, "remote2", "local1").Return(true, nil).Once()
	f.repo.EXPECT().Push(mock.Anything, testOrigin, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Remote, _ string, auth ports.AuthCallback, _ io.Writer) error {
			cred, err := auth(ctx, 0)
			require.NoError(t, err)
			assert.Equal(t, token, cred)
			return nil
		}).Once()

	svc := NewSyncService(f.repo, credentials, f.guard, nil, f.journal, f.notifier, SyncOptions{Author: testAuthor, Role: domain.RoleVerifier})
	result := svc.Run(context.Background(), domain.ModeSync)

	require.Nil(t, result.Err)
	cached, ok := store.Cached()
	assert.True(t, ok)
	assert.Equal(t, token, cached)
}

