package domain

import "time"

// ProcessInfo records the agent process currently running for a session
type ProcessInfo struct {
	Instruction string
	LogFile     string
	PID         int
	SessionID   string
	StartedAt   time.Time
}

// BackupReason tells why a session file was backed up
type BackupReason string

const (
	BackupReasonArchive  BackupReason = "archive"
	BackupReasonCompress BackupReason = "compress"
	BackupReasonDelete   BackupReason = "delete"
)

// BackupRecord catalogs one backup copy of a session file
type BackupRecord struct {
	BackupPath       string
	CreatedAt        time.Time
	ID               string
	Purpose          string
	Reason           BackupReason
	SessionCreatedAt time.Time
	SessionID        string
}
