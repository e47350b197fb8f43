package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rm-cloud/internal/config"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ClientStateRepository keeps the device token, user token and storage
	// endpoint between runs.
	ClientStateRepository ClientStateRepository

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN, creating the
// file and its directory if needed, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ClientStateRepository: NewClientStateRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
