package ports

import (
	"context"

	"github.com/udaan-tools/setsync/internal/domain"
)

// SyncRunWriter journals finished sync cycles
type SyncRunWriter interface {
	SaveRun(ctx context.Context, run domain.SyncRun) error
}

// SyncRunReader reads the journal
type SyncRunReader interface {
	LatestRun(ctx context.Context, repoPath string) (*domain.SyncRun, error)
	ListRuns(ctx context.Context, repoPath string, limit int) ([]domain.SyncRun, error)
}

// CommitRecordWriter journals ledger deliveries
type CommitRecordWriter interface {
	SaveCommitRecord(ctx context.Context, record domain.CommitRecord) error
}

// CommitRecordReader reads ledger deliveries
type CommitRecordReader interface {
	ListCommitRecords(ctx context.Context, repoPath string, limit int) ([]domain.CommitRecord, error)
}

// JournalRepository is the composite interface
type JournalRepository interface {
	CommitRecordReader
	CommitRecordWriter
	SyncRunReader
	SyncRunWriter
	Close() error
}
