package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/test/integration/harness"
)

func TestSync_UpToDate(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	before := git.RemoteHead()

	result := harness.RunCommand(t, env, "sync", "-C", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertOutputContains(t, result, "Already up to date")
	assert.Equal(t, before, git.RemoteHead())
}

func TestSync_MergesAndPushes(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	verifier := git.AddClone("verifier")

	// The verifier publishes first
	git.CommitFile(verifier, "VerifierOutput/page1.html", "<p>page one, verified</p>\n", "Verify page one")
	harness.RunGitCommand(t, verifier, "push", "origin", "main")

	// The corrector works locally and syncs
	git.CommitFile(git.ClonePath, "CorrectorOutput/page2.html", "<p>page two</p>\n", "Correct page two")
	result := harness.RunCommand(t, env, "sync", "-C", git.ClonePath, "--role", "Corrector")

	harness.AssertSuccess(t, result)
	harness.AssertOutputContains(t, result, "Merged remote changes")
	harness.AssertOutputContains(t, result, "pushed main")

	head := harness.GitOutput(t, git.ClonePath, "rev-parse", "HEAD")
	assert.Equal(t, head, git.RemoteHead())
	assert.Equal(t, "Merge remote changes", harness.GitOutput(t, git.ClonePath, "log", "-1", "--format=%s"))
	parents := harness.GitOutput(t, git.ClonePath, "log", "-1", "--format=%P")
	assert.Len(t, strings.Fields(parents), 2, "merge commit has two parents")

	merged, err := os.ReadFile(filepath.Join(git.ClonePath, "VerifierOutput", "page1.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>page one, verified</p>\n", string(merged))

	// Protected output of the other role ends up read-only again
	info, err := os.Stat(filepath.Join(git.ClonePath, "VerifierOutput", "page1.html"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0222)

	assert.NoFileExists(t, filepath.Join(git.ClonePath, ".git", "MERGE_HEAD"))

	history := harness.RunCommand(t, env, "history", "-C", git.ClonePath)
	harness.AssertSuccess(t, history)
	harness.AssertStdoutContains(t, history, "done")
	harness.AssertStdoutContains(t, history, "clean")

	commits := harness.RunCommand(t, env, "history", "-C", git.ClonePath, "--commits")
	harness.AssertSuccess(t, commits)
	harness.AssertStdoutContains(t, commits, head[:7])
	harness.AssertStdoutContains(t, commits, harness.AuthorEmail)
}

func TestSync_LocalOnlyChangesArePushed(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile(git.ClonePath, "CorrectorOutput/page2.html", "<p>page two</p>\n", "Correct page two")

	result := harness.RunCommand(t, env, "sync", "-C", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertOutputContains(t, result, "Local work already contains the remote")
	assert.Equal(t, harness.GitOutput(t, git.ClonePath, "rev-parse", "HEAD"), git.RemoteHead())
}

func TestSync_ConflictLeavesRemoteUntouched(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	other := git.AddClone("other")

	git.CommitFile(other, "CorrectorOutput/page1.html", "<p>their version</p>\n", "Their correction")
	harness.RunGitCommand(t, other, "push", "origin", "main")
	remoteBefore := git.RemoteHead()

	git.CommitFile(git.ClonePath, "CorrectorOutput/page1.html", "<p>my version</p>\n", "My correction")
	localBefore := harness.GitOutput(t, git.ClonePath, "rev-parse", "HEAD")

	// The verifier role protects CorrectorOutput, so the merge runs guarded
	result := harness.RunCommand(t, env, "sync", "-C", git.ClonePath, "--role", "Verifier")

	harness.AssertSyncFailure(t, result, domain.KindMergeConflict)
	harness.AssertOutputContains(t, result, "CONFLICT (content)")
	harness.AssertOutputContains(t, result, "CorrectorOutput/page1.html")
	assert.Equal(t, remoteBefore, git.RemoteHead(), "nothing was pushed")
	assert.Equal(t, localBefore, harness.GitOutput(t, git.ClonePath, "rev-parse", "HEAD"), "nothing was committed")

	info, err := os.Stat(filepath.Join(git.ClonePath, "CorrectorOutput", "page1.html"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0222, "protected output is read-only again after the failed merge")
}

func TestPull_DoesNotPush(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	other := git.AddClone("other")

	git.CommitFile(other, "VerifierOutput/page1.html", "<p>verified</p>\n", "Verify page one")
	harness.RunGitCommand(t, other, "push", "origin", "main")
	git.CommitFile(git.ClonePath, "CorrectorOutput/page2.html", "<p>two</p>\n", "Correct page two")
	remoteBefore := git.RemoteHead()

	result := harness.RunCommand(t, env, "pull", "-C", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertOutputContains(t, result, "Merged remote changes")
	assert.Equal(t, remoteBefore, git.RemoteHead())
	assert.NoFileExists(t, filepath.Join(git.ClonePath, ".git", "MERGE_HEAD"))
}

func TestSync_UnreachableRemote(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	require.NoError(t, os.RemoveAll(git.BareRepoPath))

	result := harness.RunCommand(t, env, "sync", "-C", git.ClonePath)

	harness.AssertFailure(t, result)
	harness.AssertOutputContains(t, result, "Sync failed")
}

func TestSync_NotARepository(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sync", "-C", env.WorkDir)

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "failed to open set")
}

func TestStatus(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CommitFile(git.ClonePath, "CorrectorOutput/page2.html", "<p>two</p>\n", "Correct page two")

	result := harness.RunCommand(t, env, "status", "-C", git.ClonePath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "main")
	harness.AssertStdoutContains(t, result, "1 ahead")
	harness.AssertStdoutContains(t, result, "never")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "sync", "-C", git.ClonePath))

	after := harness.RunCommand(t, env, "status", "-C", git.ClonePath)
	harness.AssertSuccess(t, after)
	harness.AssertStdoutContains(t, after, "up to date")
	harness.AssertStdoutContains(t, after, "sync done")
}
