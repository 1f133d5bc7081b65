package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Role is the stage a user works in on a set
type Role string

const (
	RoleCorrector Role = "Corrector"
	RoleVerifier  Role = "Verifier"
)

// Output directory names inside a set
const (
	CorrectorOutputDir = "CorrectorOutput"
	VerifierOutputDir  = "VerifierOutput"
)

// ParseRole accepts role names case-insensitively
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corrector":
		return RoleCorrector, nil
	case "verifier":
		return RoleVerifier, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("unknown role %q (expected Corrector or Verifier)", s)
	}
}

// OutputDir is the directory this role writes to
func (r Role) OutputDir() string {
	switch r {
	case RoleCorrector:
		return CorrectorOutputDir
	case RoleVerifier:
		return VerifierOutputDir
	default:
		return ""
	}
}

// ProtectedDir is the other role's output, read-only for this role except
// while remote changes are merged in
func (r Role) ProtectedDir() string {
	switch r {
	case RoleCorrector:
		return VerifierOutputDir
	case RoleVerifier:
		return CorrectorOutputDir
	default:
		return ""
	}
}

// Author identifies who signs commits
type Author struct {
	Email string
	Name  string
}

// Project is an opened set: a working copy plus who works on it
type Project struct {
	Author     Author
	Path       string
	RemoteName string
	RemoteURL  string
	Role       Role
}

// ConfigPath is the repository configuration file read for the branch name
func (p Project) ConfigPath() string {
	return filepath.Join(p.Path, ".git", "config")
}

// SyncDirectory returns the absolute protected directory, or "" when the
// project has no role
func (p Project) SyncDirectory() string {
	dir := p.Role.ProtectedDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(p.Path, dir)
}

// CommitRecord is an entry sent to the commit ledger
type CommitRecord struct {
	Delivered  bool
	Email      string
	Error      string
	Hash       string
	RecordedAt time.Time
	RepoPath   string
}

// InitialCommitMessage is used when a project directory is put under
// version control
const InitialCommitMessage = "Initial project commit"

// NoChangedFiles is reported by describe when a commit touches nothing
// relevant to the role
const NoChangedFiles = "No Changed Files"

// SyncStatus summarizes how a working copy relates to its remote
type SyncStatus struct {
	Ahead     int
	Behind    int
	Branch    string
	LastRun   *SyncRun
	LocalID   string
	RemoteID  string
	RemoteRef string
}
