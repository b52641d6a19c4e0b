package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s-age/pipe-sub004/internal/config"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// SQLiteCatalog implements ports.BackupCatalog using GORM
type SQLiteCatalog struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.BackupCatalog = (*SQLiteCatalog)(nil)

// gormLogger wraps the pipe logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PIPE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCatalog opens (creating if needed) the backup catalog at dbPath
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the foreground CLI read while an agent process records
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&BackupModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate backups schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteCatalog{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteCatalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores a backup record. A duplicate id is a conflict.
func (c *SQLiteCatalog) Record(ctx context.Context, record domain.BackupRecord) error {
	model := domainToBackupModel(record)
	err := withRetry(func() error {
		return c.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("backup %s: %w", record.ID, domain.ErrConflict)
		}
		return domain.IOError("record backup", err)
	}
	return nil
}

// Get returns the backup record with id
func (c *SQLiteCatalog) Get(ctx context.Context, id string) (*domain.BackupRecord, error) {
	var model BackupModel
	err := withRetry(func() error {
		return c.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", id, domain.ErrBackupNotFound)
		}
		return nil, domain.IOError("get backup", err)
	}
	record := backupModelToDomain(model)
	return &record, nil
}

// List returns the records of sessionID (all records when empty), newest first
func (c *SQLiteCatalog) List(ctx context.Context, sessionID string) ([]domain.BackupRecord, error) {
	var models []BackupModel
	err := withRetry(func() error {
		query := c.db.WithContext(ctx).Order("created_at DESC").Order("id")
		if sessionID != "" {
			query = query.Where("session_id = ?", sessionID)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, domain.IOError("list backups", err)
	}

	records := make([]domain.BackupRecord, 0, len(models))
	for _, m := range models {
		records = append(records, backupModelToDomain(m))
	}
	return records, nil
}

func isConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
