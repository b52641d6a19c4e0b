package ports

import (
	"context"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// BackupCatalog records where session backups were written
type BackupCatalog interface {
	Close() error
	Get(ctx context.Context, id string) (*domain.BackupRecord, error)
	// List returns records for sessionID, or all records when it is empty,
	// newest first
	List(ctx context.Context, sessionID string) ([]domain.BackupRecord, error)
	Record(ctx context.Context, record domain.BackupRecord) error
}
