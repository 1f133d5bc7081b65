package ports

import "context"

// PermissionGuard makes a directory writable only while body runs
type PermissionGuard interface {
	// WithWritable restores read-only permissions on every exit path of body
	WithWritable(ctx context.Context, dir string, body func() error) error
}
