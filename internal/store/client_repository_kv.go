package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// sqliteKeyValueStore keeps client state in the single "kv" table.
type sqliteKeyValueStore struct {
	*DB
	quotaBytes int64
	logger     *logger.Logger
	now        func() time.Time
}

// NewKeyValueRepository returns a [KeyValueStore] on top of the local SQLite
// database. A positive quotaBytes caps the summed size of all values.
func NewKeyValueRepository(db *DB, quotaBytes int64, logger *logger.Logger) KeyValueStore {
	logger.Debug().Int64("quota_bytes", quotaBytes).Msg("creating key-value repository")
	return &sqliteKeyValueStore{
		DB:         db,
		quotaBytes: quotaBytes,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	log := logger.FromContext(ctx)
	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	query, args, err := sq.Select("key", "value").
		From(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var qErr error
		rows, qErr = s.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStore.Get").Strs("keys", keys).Msg("failed to query values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, values map[string][]byte) error {
	log := logger.FromContext(ctx)
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	var incoming int64
	for k, v := range values {
		keys = append(keys, k)
		incoming += int64(len(v))
	}
	sort.Strings(keys)

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if s.quotaBytes > 0 {
		used, err := s.usedBytesExcept(ctx, tx, keys)
		if err != nil {
			return err
		}
		if used+incoming > s.quotaBytes {
			log.Warn().
				Str("func", "*sqliteKeyValueStore.Set").
				Int64("used", used).
				Int64("incoming", incoming).
				Int64("quota", s.quotaBytes).
				Msg("write rejected by quota")
			return ErrQuotaExceeded
		}
	}

	now := s.now().UTC()
	for _, k := range keys {
		if _, err = tx.ExecContext(ctx, upsertKeyValue, k, values[k], now); err != nil {
			if isSQLiteFull(err) {
				return ErrQuotaExceeded
			}
			log.Err(err).Str("func", "*sqliteKeyValueStore.Set").Str("key", k).Msg("failed to upsert value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		if isSQLiteFull(err) {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) usedBytesExcept(ctx context.Context, tx *sql.Tx, keys []string) (int64, error) {
	query, args, err := sq.Select("COALESCE(SUM(LENGTH(value)), 0)").
		From(kvTable).
		Where(sq.NotEq{"key": keys}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var used int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return used, nil
}
