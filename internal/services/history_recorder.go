package services

import (
	"context"
	"sync"
	"time"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// HistoryRecorder reports commits to the ledger. Delivery is best effort:
// failures are logged and journaled, never returned to the commit path.
type HistoryRecorder struct {
	journal  ports.CommitRecordWriter
	ledger   ports.CommitLedger
	pending  sync.WaitGroup
	repoPath string
	timeout  time.Duration
}

// NewHistoryRecorder creates a new HistoryRecorder. ledger and journal may
// be nil.
func NewHistoryRecorder(ledger ports.CommitLedger, journal ports.CommitRecordWriter, repoPath string, timeout time.Duration) *HistoryRecorder {
	return &HistoryRecorder{
		journal:  journal,
		ledger:   ledger,
		repoPath: repoPath,
		timeout:  timeout,
	}
}

// Record posts (hash, email) in the background. The returned channel
// yields the delivery error (nil on success) once and is closed; callers
// are free to ignore it.
func (h *HistoryRecorder) Record(ctx context.Context, hash, email string) <-chan error {
	done := make(chan error, 1)
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		defer close(done)
		done <- h.record(ctx, hash, email)
	}()
	return done
}

// Wait blocks until every started recording finished
func (h *HistoryRecorder) Wait() {
	h.pending.Wait()
}

func (h *HistoryRecorder) record(ctx context.Context, hash, email string) error {
	// The post outlives the sync cycle that started it
	ctx = context.WithoutCancel(ctx)

	var err error
	if h.ledger == nil {
		logging.Logger.Debug("No commit ledger configured, skipping", "hash", hash)
	} else {
		postCtx, cancel := ctx, context.CancelFunc(func() {})
		if h.timeout > 0 {
			postCtx, cancel = context.WithTimeout(ctx, h.timeout)
		}
		err = h.ledger.Post(postCtx, hash, email)
		cancel()
		if err != nil {
			logging.Logger.Warn("Failed to record commit", "error", err, "hash", hash)
		} else {
			logging.Logger.Info("Commit recorded", "hash", hash)
		}
	}

	if h.journal != nil {
		record := domain.CommitRecord{
			Delivered:  h.ledger != nil && err == nil,
			Email:      email,
			Hash:       hash,
			RecordedAt: time.Now(),
			RepoPath:   h.repoPath,
		}
		if err != nil {
			record.Error = err.Error()
		}
		if jerr := h.journal.SaveCommitRecord(ctx, record); jerr != nil {
			logging.Logger.Warn("Failed to journal commit record", "error", jerr, "hash", hash)
		}
	}
	return err
}
