package ports

import "context"

// Notifier surfaces outcomes the user has to see
type Notifier interface {
	// NotifyConflict blocks until the user acknowledges the conflict
	NotifyConflict(ctx context.Context, conflictedPaths []string) error
}
