package domain

import "time"

// SyncState is a step of the sync state machine
type SyncState string

const (
	StateIdle         SyncState = "idle"
	StateRemoteLookup SyncState = "remote_lookup"
	StateFetching     SyncState = "fetching"
	StateDiffCheck    SyncState = "diff_check"
	StateMerging      SyncState = "merging"
	StateCommitting   SyncState = "committing"
	StatePushing      SyncState = "pushing"
	StateDone         SyncState = "done"
	StateFailed       SyncState = "failed"
)

// IsTerminal reports whether no further transition can happen
func (s SyncState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// MergeOutcome is the result of applying remote changes to the working tree
type MergeOutcome string

const (
	MergeNone       MergeOutcome = ""
	MergeClean      MergeOutcome = "clean"
	MergeConflicted MergeOutcome = "conflicted"
	MergeFailed     MergeOutcome = "failed"
	MergeUpToDate   MergeOutcome = "up_to_date"
)

// MergeResult carries the outcome plus conflicted paths or failure reason
type MergeResult struct {
	ConflictedPaths []string
	Outcome         MergeOutcome
	Reason          string
}

// SyncMode selects which part of the workflow runs
type SyncMode string

const (
	// ModeSync fetches, merges, commits and pushes
	ModeSync SyncMode = "sync"
	// ModePull fetches and merges into the working tree only
	ModePull SyncMode = "pull"
)

// SyncResult is the final state of one sync cycle
type SyncResult struct {
	Branch       string
	Err          *SyncError
	FinishedAt   time.Time
	LocalID      string
	Merge        MergeResult
	MergeCommit  string
	Mode         SyncMode
	Pushed       bool
	RemoteID     string
	RunID        string
	StartedAt    time.Time
	State        SyncState
	UpToDateSkip bool
}

// Succeeded reports whether the cycle reached Done
func (r *SyncResult) Succeeded() bool {
	return r != nil && r.State == StateDone
}

// Code returns the legacy signed result: zero on success, negative on failure
func (r *SyncResult) Code() int {
	if r == nil {
		return KindUnknown.Code()
	}
	if r.Err == nil {
		return 0
	}
	return r.Err.Kind.Code()
}

// SyncRun is a journaled sync cycle
type SyncRun struct {
	Branch      string
	ErrorKind   ErrorKind
	FinishedAt  *time.Time
	ID          string
	Message     string
	MergeCommit string
	MergeResult MergeOutcome
	Mode        SyncMode
	Pushed      bool
	RepoPath    string
	StartedAt   time.Time
	State       SyncState
}

// RunFromResult builds the journal row for a finished cycle
func RunFromResult(repoPath string, r *SyncResult) SyncRun {
	run := SyncRun{
		Branch:      r.Branch,
		ID:          r.RunID,
		MergeCommit: r.MergeCommit,
		MergeResult: r.Merge.Outcome,
		Mode:        r.Mode,
		Pushed:      r.Pushed,
		RepoPath:    repoPath,
		StartedAt:   r.StartedAt,
		State:       r.State,
	}
	if !r.FinishedAt.IsZero() {
		finished := r.FinishedAt
		run.FinishedAt = &finished
	}
	if r.Err != nil {
		run.ErrorKind = r.Err.Kind
		run.Message = r.Err.Error()
	}
	return run
}

// Transition is emitted every time the state machine moves
type Transition struct {
	At      time.Time
	From    SyncState
	Message string
	To      SyncState
}
