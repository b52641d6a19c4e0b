package storage

import "time"

// BackupModel is the GORM model for the backups table
type BackupModel struct {
	BackupPath       string    `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null;index:idx_created_at"`
	ID               string    `gorm:"primaryKey"`
	Purpose          string    `gorm:"not null;default:''"`
	Reason           string    `gorm:"not null;check:reason IN ('archive','delete','compress')"`
	SessionCreatedAt time.Time
	SessionID        string    `gorm:"not null;index:idx_session_id"`
}

// TableName specifies the table name for GORM
func (BackupModel) TableName() string { return "backups" }
