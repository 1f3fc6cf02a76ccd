package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// snapshotRepository is the PostgreSQL implementation of [SnapshotRepository].
// One row per (account, device) holds that device's latest upload.
type snapshotRepository struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewSnapshotRepository constructs a [SnapshotRepository] over db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertSnapshot replaces the device's snapshot row.
func (r *snapshotRepository) UpsertSnapshot(ctx context.Context, s models.StoredSnapshot) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(
			s.AccountID,
			s.DeviceID,
			s.Payload.Encrypted,
			s.Payload.IV,
			sql.NullString{String: s.BlobKey, Valid: s.BlobKey != ""},
			s.ClientTimestamp,
			s.Version,
			s.UpdatedAt,
		).
		Suffix(upsertSnapshotSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.UpsertSnapshot").
			Str("account_id", s.AccountID).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetLatestSnapshot loads the newest snapshot another device uploaded, or
// [ErrSnapshotNotFound].
func (r *snapshotRepository) GetLatestSnapshot(ctx context.Context, accountID, excludeDeviceID string) (models.StoredSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.NotEq{"device_id": excludeDeviceID}).
		OrderBy("client_timestamp DESC", "updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.StoredSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s       models.StoredSnapshot
		blobKey sql.NullString
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&s.AccountID,
			&s.DeviceID,
			&s.Payload.Encrypted,
			&s.Payload.IV,
			&blobKey,
			&s.ClientTimestamp,
			&s.Version,
			&s.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.GetLatestSnapshot").
			Str("account_id", accountID).
			Msg("failed to load snapshot")
		return models.StoredSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	s.BlobKey = blobKey.String

	return s, nil
}

// DeleteSnapshots removes all rows of the account. Deleting nothing is not
// an error.
func (r *snapshotRepository) DeleteSnapshots(ctx context.Context, accountID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete(snapshotsTable).
		Where(sq.Eq{"account_id": accountID}).
		Suffix(returningBlobKeySuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.DeleteSnapshots").
			Str("account_id", accountID).
			Msg("failed to delete snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key sql.NullString
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if key.Valid && key.String != "" {
			keys = append(keys, key.String)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
