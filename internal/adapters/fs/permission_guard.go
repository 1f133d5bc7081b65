package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

const (
	// WritableMode is applied to protected files while a merge may touch them
	WritableMode fs.FileMode = 0666
	// ReadOnlyMode is the resting mode of protected files
	ReadOnlyMode fs.FileMode = 0444
)

// PermissionGuard implements ports.PermissionGuard on the local filesystem
type PermissionGuard struct{}

// Verify interface compliance at compile time
var _ ports.PermissionGuard = (*PermissionGuard)(nil)

// NewPermissionGuard creates a new PermissionGuard
func NewPermissionGuard() *PermissionGuard {
	return &PermissionGuard{}
}

// WithWritable makes every regular file under dir writable, runs body, then
// makes them read-only again. The restore runs on every exit path, panics
// included, and its failures are joined to body's error. A missing dir runs
// body unguarded.
func (g *PermissionGuard) WithWritable(ctx context.Context, dir string, body func() error) (err error) {
	if dir == "" {
		return body()
	}
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		logging.Logger.Debug("Protected directory absent, running unguarded", "dir", dir)
		return body()
	}

	if chErr := chmodTree(dir, WritableMode); chErr != nil {
		// Restore whatever was already widened before giving up
		return errors.Join(fmt.Errorf("failed to make %s writable: %w", dir, chErr), chmodTree(dir, ReadOnlyMode))
	}
	logging.Logger.Debug("Protected directory writable", "dir", dir)

	defer func() {
		if restoreErr := chmodTree(dir, ReadOnlyMode); restoreErr != nil {
			logging.Logger.Error("Failed to restore read-only permissions", "error", restoreErr, "dir", dir)
			err = errors.Join(err, fmt.Errorf("failed to restore read-only permissions on %s: %w", dir, restoreErr))
		} else {
			logging.Logger.Debug("Protected directory read-only", "dir", dir)
		}
	}()

	return body()
}

// chmodTree applies mode to every regular file below root. It keeps going
// after a failure so one bad file does not leave the rest writable.
func chmodTree(root string, mode fs.FileMode) error {
	var errs []error
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := os.Chmod(path, mode); err != nil {
			errs = append(errs, err)
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return errors.Join(errs...)
}
