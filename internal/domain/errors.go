package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a sync cycle failed
type ErrorKind string

const (
	KindAuthCancelled      ErrorKind = "auth_cancelled"
	KindAuthRejected       ErrorKind = "auth_rejected"
	KindCancelled          ErrorKind = "cancelled"
	KindConfigParseFailure ErrorKind = "config_parse_failure"
	KindMergeConflict      ErrorKind = "merge_conflict"
	KindPushRejected       ErrorKind = "push_rejected"
	KindRemoteUnreachable  ErrorKind = "remote_unreachable"
	KindTimeout            ErrorKind = "timeout"
	KindUnknown            ErrorKind = "unknown"
)

var (
	ErrAuthCancelled      = errors.New("authentication cancelled by user")
	ErrAuthRejected       = errors.New("authentication rejected by remote")
	ErrCancelled          = errors.New("operation cancelled")
	ErrConfigParseFailure = errors.New("could not determine branch from repository config")
	ErrMergeConflict      = errors.New("automatic merge failed; fix conflicts and then commit the result")
	ErrPushRejected       = errors.New("push rejected by remote")
	ErrRemoteUnreachable  = errors.New("remote unreachable")
	ErrTimeout            = errors.New("operation timed out")

	ErrInvalidBranchName = errors.New("invalid branch name")
	ErrNoAccountLogin    = errors.New("no account login configured")
	ErrNotARepository    = errors.New("not a git repository")
	ErrSyncInProgress    = errors.New("another sync is already running for this repository")
)

// kindSentinels maps each kind to the sentinel errors.Is matches against
var kindSentinels = map[ErrorKind]error{
	KindAuthCancelled:      ErrAuthCancelled,
	KindAuthRejected:       ErrAuthRejected,
	KindCancelled:          ErrCancelled,
	KindConfigParseFailure: ErrConfigParseFailure,
	KindMergeConflict:      ErrMergeConflict,
	KindPushRejected:       ErrPushRejected,
	KindRemoteUnreachable:  ErrRemoteUnreachable,
	KindTimeout:            ErrTimeout,
}

// Code returns the legacy signed error code for the kind.
// Negative values mirror the underlying library convention.
func (k ErrorKind) Code() int {
	switch k {
	case KindRemoteUnreachable:
		return -2
	case KindAuthRejected:
		return -3
	case KindAuthCancelled:
		return -4
	case KindMergeConflict:
		return -5
	case KindPushRejected:
		return -6
	case KindConfigParseFailure:
		return -7
	case KindCancelled:
		return -8
	case KindTimeout:
		return -9
	default:
		return -1
	}
}

// SyncError is a failure captured at a specific state of the sync cycle
type SyncError struct {
	Err   error
	Kind  ErrorKind
	State SyncState
}

// NewSyncError wraps err as a failure of the given kind at the given state
func NewSyncError(state SyncState, kind ErrorKind, err error) *SyncError {
	if err == nil {
		err = kindSentinels[kind]
	}
	if err == nil {
		err = errors.New(string(kind))
	}
	return &SyncError{Err: err, Kind: kind, State: state}
}

func (e *SyncError) Error() string {
	if e.Kind == KindUnknown {
		return fmt.Sprintf("%s: %v", e.State, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", e.State, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a SyncError against the sentinel of its kind
func (e *SyncError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// KindOf classifies err. Errors that carry no known kind are KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
