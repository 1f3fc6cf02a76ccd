package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// ClientStorages groups the client-side persistence handed to services.
type ClientStorages struct {
	// KeyValue holds history, templates, settings, key material and sync flags.
	KeyValue KeyValueStore

	db *DB
}

// NewClientStorages opens the local SQLite database, applies migrations and
// wires the key-value repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValue: NewKeyValueRepository(db, cfg.QuotaBytes, logger),
		db:       db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
