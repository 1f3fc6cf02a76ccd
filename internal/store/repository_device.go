package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

type deviceRepository struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewDeviceRepository constructs the PostgreSQL [DeviceRepository].
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// TouchDevice registers deviceID for the account or refreshes its last_seen.
func (r *deviceRepository) TouchDevice(ctx context.Context, accountID, deviceID string, seenAt time.Time) error {
	query, args, err := r.builder.Insert(devicesTable).
		Columns("account_id", "device_id", "first_seen", "last_seen").
		Values(accountID, deviceID, seenAt, seenAt).
		Suffix(touchDeviceSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceRepository.TouchDevice").
			Str("account_id", accountID).
			Str("device_id", deviceID).
			Msg("failed to touch device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountDevices returns how many distinct devices the account has used.
func (r *deviceRepository) CountDevices(ctx context.Context, accountID string) (int, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From(devicesTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceRepository.CountDevices").
			Str("account_id", accountID).
			Msg("failed to count devices")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}
