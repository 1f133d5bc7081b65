package domain

import "errors"

// DefaultRemoteName is looked up before falling back to an anonymous remote
const DefaultRemoteName = "origin"

// ErrRemoteNotFound is returned when a named remote is not configured
var ErrRemoteNotFound = errors.New("remote not found")

// Remote is a named (or anonymous, in-memory) pointer to another copy of
// the repository
type Remote struct {
	Anonymous bool
	Name      string
	URL       string
}

