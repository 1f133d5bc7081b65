package storage

import (
	"github.com/udaan-tools/setsync/internal/domain"
)

// syncRunModelToDomain converts a SyncRunModel (GORM) to domain.SyncRun
func syncRunModelToDomain(m SyncRunModel) domain.SyncRun {
	return domain.SyncRun{
		Branch:      m.Branch,
		ErrorKind:   domain.ErrorKind(m.ErrorKind),
		FinishedAt:  m.FinishedAt,
		ID:          m.ID,
		Message:     m.Message,
		MergeCommit: m.MergeCommit,
		MergeResult: domain.MergeOutcome(m.MergeResult),
		Mode:        domain.SyncMode(m.Mode),
		Pushed:      m.Pushed,
		RepoPath:    m.RepoPath,
		StartedAt:   m.StartedAt,
		State:       domain.SyncState(m.State),
	}
}

// domainToSyncRunModel converts a domain.SyncRun to SyncRunModel (GORM)
func domainToSyncRunModel(r domain.SyncRun) SyncRunModel {
	mode := string(r.Mode)
	if mode == "" {
		mode = string(domain.ModeSync)
	}
	return SyncRunModel{
		Branch:      r.Branch,
		ErrorKind:   string(r.ErrorKind),
		FinishedAt:  r.FinishedAt,
		ID:          r.ID,
		Message:     r.Message,
		MergeCommit: r.MergeCommit,
		MergeResult: string(r.MergeResult),
		Mode:        mode,
		Pushed:      r.Pushed,
		RepoPath:    r.RepoPath,
		StartedAt:   r.StartedAt,
		State:       string(r.State),
	}
}

// commitRecordModelToDomain converts a CommitRecordModel (GORM) to domain.CommitRecord
func commitRecordModelToDomain(m CommitRecordModel) domain.CommitRecord {
	return domain.CommitRecord{
		Delivered:  m.Delivered,
		Email:      m.Email,
		Error:      m.Error,
		Hash:       m.Hash,
		RecordedAt: m.RecordedAt,
		RepoPath:   m.RepoPath,
	}
}

// domainToCommitRecordModel converts a domain.CommitRecord to CommitRecordModel (GORM)
func domainToCommitRecordModel(r domain.CommitRecord) CommitRecordModel {
	return CommitRecordModel{
		Delivered:  r.Delivered,
		Email:      r.Email,
		Error:      r.Error,
		Hash:       r.Hash,
		RecordedAt: r.RecordedAt,
		RepoPath:   r.RepoPath,
	}
}
