package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
	portsmocks "github.com/udaan-tools/setsync/internal/ports/mocks"
)

func TestHistoryRecorder_DeliveredIsJournaled(t *testing.T) {
	ledger := portsmocks.NewMockCommitLedger(t)
	journal := portsmocks.NewMockJournalRepository(t)
	ledger.EXPECT().Post(mock.Anything, "abc123", "corrector@example.com").Return(nil).Once()
	journal.EXPECT().SaveCommitRecord(mock.Anything, mock.MatchedBy(func(r domain.CommitRecord) bool {
		return r.Delivered && r.Hash == "abc123" && r.RepoPath == testRepoPath && r.Error == ""
	})).Return(nil).Once()

	r := NewHistoryRecorder(ledger, journal, testRepoPath, time.Second)

	err := <-r.Record(context.Background(), "abc123", "corrector@example.com")

	assert.NoError(t, err)
}

func TestHistoryRecorder_FailureIsSwallowedAndJournaled(t *testing.T) {
	ledger := portsmocks.NewMockCommitLedger(t)
	journal := portsmocks.NewMockJournalRepository(t)
	ledger.EXPECT().Post(mock.Anything, "abc123", "c@example.com").Return(errors.New("status 502")).Once()
	journal.EXPECT().SaveCommitRecord(mock.Anything, mock.MatchedBy(func(r domain.CommitRecord) bool {
		return !r.Delivered && r.Error == "status 502"
	})).Return(nil).Once()

	r := NewHistoryRecorder(ledger, journal, testRepoPath, time.Second)
	done := r.Record(context.Background(), "abc123", "c@example.com")
	r.Wait()

	err, ok := <-done
	require.True(t, ok)
	assert.EqualError(t, err, "status 502")
	_, ok = <-done
	assert.False(t, ok, "future is closed after one value")
}

func TestHistoryRecorder_OutlivesCancelledCycle(t *testing.T) {
	ledger := portsmocks.NewMockCommitLedger(t)
	ledger.EXPECT().Post(mock.Anything, "abc123", "c@example.com").
		RunAndReturn(func(ctx context.Context, _, _ string) error {
			return ctx.Err()
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := <-NewHistoryRecorder(ledger, nil, testRepoPath, time.Second).Record(ctx, "abc123", "c@example.com")

	assert.NoError(t, err)
}

func TestHistoryRecorder_NoLedgerConfigured(t *testing.T) {
	journal := portsmocks.NewMockJournalRepository(t)
	journal.EXPECT().SaveCommitRecord(mock.Anything, mock.MatchedBy(func(r domain.CommitRecord) bool {
		return !r.Delivered
	})).Return(nil).Once()

	err := <-NewHistoryRecorder(nil, journal, testRepoPath, 0).Record(context.Background(), "abc123", "")

	assert.NoError(t, err)
}
