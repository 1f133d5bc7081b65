package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// SQLiteRepository implements ports.JournalRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.JournalRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the setsync logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SETSYNC_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the journal database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL so a sync in one terminal does not block history in another
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SyncRunModel{}, &CommitRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveRun implements SyncRunWriter.SaveRun. Saving a run id twice updates it.
func (r *SQLiteRepository) SaveRun(ctx context.Context, run domain.SyncRun) error {
	if run.ID == "" {
		return errors.New("sync run has no id")
	}
	model := domainToSyncRunModel(run)
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&model).Error
	}, 3)
}

// LatestRun implements SyncRunReader.LatestRun. It returns nil when the
// repository has never been synced.
func (r *SQLiteRepository) LatestRun(ctx context.Context, repoPath string) (*domain.SyncRun, error) {
	var model SyncRunModel
	err := r.db.WithContext(ctx).
		Where("repo_path = ?", repoPath).
		Order("started_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}
	run := syncRunModelToDomain(model)
	return &run, nil
}

// ListRuns implements SyncRunReader.ListRuns, newest first. An empty
// repoPath lists every repository.
func (r *SQLiteRepository) ListRuns(ctx context.Context, repoPath string, limit int) ([]domain.SyncRun, error) {
	var models []SyncRunModel
	q := r.db.WithContext(ctx).Order("started_at DESC")
	if repoPath != "" {
		q = q.Where("repo_path = ?", repoPath)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]domain.SyncRun, 0, len(models))
	for _, m := range models {
		runs = append(runs, syncRunModelToDomain(m))
	}
	return runs, nil
}

// SaveCommitRecord implements CommitRecordWriter.SaveCommitRecord
func (r *SQLiteRepository) SaveCommitRecord(ctx context.Context, record domain.CommitRecord) error {
	model := domainToCommitRecordModel(record)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
}

// ListCommitRecords implements CommitRecordReader.ListCommitRecords, newest first
func (r *SQLiteRepository) ListCommitRecords(ctx context.Context, repoPath string, limit int) ([]domain.CommitRecord, error) {
	var models []CommitRecordModel
	q := r.db.WithContext(ctx).Order("recorded_at DESC").Order("id DESC")
	if repoPath != "" {
		q = q.Where("repo_path = ?", repoPath)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list commit records: %w", err)
	}

	records := make([]domain.CommitRecord, 0, len(models))
	for _, m := range models {
		records = append(records, commitRecordModelToDomain(m))
	}
	return records, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
