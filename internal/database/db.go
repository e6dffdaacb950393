package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

// AuditEntry records one mutating dashboard request. Only the request
// metadata is kept; entity data stays in the backend.
type AuditEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID  string    `gorm:"type:varchar(64);index" json:"request_id"`
	Username   string    `gorm:"type:varchar(128);index" json:"username"`
	Method     string    `gorm:"type:varchar(8);not null" json:"method"`
	Path       string    `gorm:"type:varchar(256);not null" json:"path"`
	Resource   string    `gorm:"type:varchar(64);index" json:"resource"`
	Status     int       `gorm:"not null" json:"status"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func MigrateAuditDB(db *gorm.DB) error {
	return db.AutoMigrate(&AuditEntry{})
}

type AuditLog struct {
	db *gorm.DB
}

func NewAuditLog(db *gorm.DB) *AuditLog {
	return &AuditLog{db: db}
}

func (l *AuditLog) Record(ctx context.Context, entry AuditEntry) error {
	return l.db.WithContext(ctx).Create(&entry).Error
}

// Recent returns the newest entries first, optionally limited to one user.
func (l *AuditLog) Recent(ctx context.Context, username string, limit int) ([]AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := l.db.WithContext(ctx).Order("created_at desc, id desc").Limit(limit)
	if username != "" {
		q = q.Where("username = ?", username)
	}
	var entries []AuditEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
