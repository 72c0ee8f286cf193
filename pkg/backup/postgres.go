package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/postgres"
)

// BackupRecord is the database row for an archived search.
type BackupRecord struct {
	ID        string    `gorm:"primaryKey;size:26"`
	Name      string    `gorm:"size:64;index"`
	Request   string    `gorm:"type:jsonb;not null"`
	Response  string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides the gorm table name
func (BackupRecord) TableName() string {
	return "search_backups"
}

// BeforeCreate assigns a ULID so rows sort by insertion time
func (r *BackupRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	return nil
}

// PostgresSink inserts one row per record.
type PostgresSink struct {
	client postgres.PostgresClient
	logger logger.LoggerInterface
}

// NewPostgresSink creates a sink. Call Migrate once before the first Save.
func NewPostgresSink(client postgres.PostgresClient, appLogger logger.LoggerInterface) *PostgresSink {
	if appLogger == nil {
		appLogger = logger.NoOpLogger()
	}
	return &PostgresSink{client: client, logger: appLogger}
}

// Migrate creates the backup table
func (s *PostgresSink) Migrate() error {
	return s.client.Migrate(&BackupRecord{})
}

// Save implements Sink
func (s *PostgresSink) Save(ctx context.Context, rec Record) error {
	row := &BackupRecord{
		Name:     rec.Name,
		Request:  string(rec.Request),
		Response: string(rec.Response),
	}

	if err := s.client.GetDB().WithContext(ctx).Create(row).Error; err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert backup row", "name", rec.Name, "error", err)
		return fmt.Errorf("failed to insert backup row: %w", err)
	}

	s.logger.DebugContext(ctx, "Backup row inserted", "id", row.ID, "name", rec.Name)
	return nil
}
