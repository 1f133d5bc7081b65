package git

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
)

const lockFileName = "setsync.lock"

// TryLock takes the per-repository sync lock. The lock is a file lock on
// .git/setsync.lock so separate processes exclude each other too.
func (r *Repository) TryLock(ctx context.Context) (func() error, error) {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()

	if r.lockFile != nil {
		return nil, domain.ErrSyncInProgress
	}

	file, err := os.OpenFile(r.gitDir(lockFileName), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	ok, err := tryLockFile(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock repository: %w", err)
	}
	if !ok {
		file.Close()
		logging.Logger.Warn("Repository is locked by another sync", "path", r.path)
		return nil, domain.ErrSyncInProgress
	}

	r.lockFile = file
	logging.Logger.Debug("Repository lock acquired", "path", r.path)

	return func() error {
		r.lockMu.Lock()
		defer r.lockMu.Unlock()
		if r.lockFile != file {
			return nil
		}
		r.lockFile = nil
		return releaseLock(file)
	}, nil
}

func releaseLock(file *os.File) error {
	return errors.Join(unlockFile(file), file.Close())
}
