package storage

import "time"

// SyncRunModel is the GORM model for sync_runs table
type SyncRunModel struct {
	Branch      string     `gorm:"not null;default:''"`
	CreatedAt   time.Time
	ErrorKind   string     `gorm:"not null;default:''"`
	FinishedAt  *time.Time `gorm:"default:null"`
	ID          string     `gorm:"primaryKey"`
	Message     string     `gorm:"not null;default:''"`
	MergeCommit string     `gorm:"not null;default:''"`
	MergeResult string     `gorm:"not null;default:''"`
	Mode        string     `gorm:"not null;default:'sync';check:mode IN ('sync','pull')"`
	Pushed      bool       `gorm:"not null;default:false"`
	RepoPath    string     `gorm:"not null;index:idx_sync_runs_repo_started,priority:1"`
	StartedAt   time.Time  `gorm:"not null;index:idx_sync_runs_repo_started,priority:2"`
	State       string     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SyncRunModel) TableName() string { return "sync_runs" }

// CommitRecordModel is the GORM model for commit_records table
type CommitRecordModel struct {
	Delivered  bool      `gorm:"not null;default:false"`
	Email      string    `gorm:"not null;default:''"`
	Error      string    `gorm:"not null;default:''"`
	Hash       string    `gorm:"not null;index"`
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	RecordedAt time.Time `gorm:"not null;index:idx_commit_records_repo_recorded,priority:2"`
	RepoPath   string    `gorm:"not null;index:idx_commit_records_repo_recorded,priority:1"`
}

// TableName specifies the table name for GORM
func (CommitRecordModel) TableName() string { return "commit_records" }
