package ports

import "context"

// CommitLedger receives a record of every commit made through setsync
type CommitLedger interface {
	Post(ctx context.Context, commitHash, email string) error
}
