package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soedr/google-flights-api/pkg/logger"
)

// Sink stores backup records.
type Sink interface {
	Save(ctx context.Context, rec Record) error
}

// FileSink writes each record to <dir>/<record name>. Records that share a name
// overwrite each other.
type FileSink struct {
	dir    string
	logger logger.LoggerInterface
}

// NewFileSink creates a sink writing into dir. The directory must already exist.
func NewFileSink(dir string, appLogger logger.LoggerInterface) *FileSink {
	if appLogger == nil {
		appLogger = logger.NoOpLogger()
	}
	return &FileSink{dir: dir, logger: appLogger}
}

// Dir returns the target directory
func (s *FileSink) Dir() string {
	return s.dir
}

// Save writes the record as UTF-8 JSON
func (s *FileSink) Save(ctx context.Context, rec Record) error {
	payload, err := rec.Payload()
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, rec.Name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write backup file", "path", path, "error", err)
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	s.logger.DebugContext(ctx, "Backup file written", "path", path)
	return nil
}

// MultiSink saves a record to every sink in order and stops at the first failure.
type MultiSink []Sink

// Save implements Sink
func (m MultiSink) Save(ctx context.Context, rec Record) error {
	for _, sink := range m {
		if err := sink.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
