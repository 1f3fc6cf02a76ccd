package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// Storages groups the sync server persistence.
type Storages struct {
	Snapshots SnapshotStorage
	Devices   DeviceRepository

	db *DB
}

// NewStorages connects to PostgreSQL, runs migrations and, when a bucket is
// configured, routes payload bodies to S3.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var blobs SnapshotBlobStore
	if cfg.S3.Bucket != "" {
		blobs, err = NewS3SnapshotBlobStore(ctx, cfg.S3, log)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Storages{
		Snapshots: NewSnapshotStorage(NewSnapshotRepository(db, log), blobs, log),
		Devices:   NewDeviceRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
