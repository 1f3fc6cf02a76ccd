package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUpsertSnapshot_Success(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	now := time.Now().UTC()
	snap := models.StoredSnapshot{
		AccountID:       "acc-1",
		DeviceID:        "device_1",
		Payload:         models.EncryptedPayload{Encrypted: []byte{1, 2}, IV: make([]byte, 12)},
		ClientTimestamp: 1700000000000,
		Version:         models.PayloadVersion,
		UpdatedAt:       now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snapshots (account_id,device_id,encrypted,iv,blob_key,client_timestamp,version,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (account_id, device_id)")).
		WithArgs("acc-1", "device_1", []byte{1, 2}, make([]byte, 12), sqlmock.AnyArg(), int64(1700000000000), "1.0", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertSnapshot(context.Background(), snap))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSnapshot_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO snapshots").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO snapshots").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertSnapshot(context.Background(), models.StoredSnapshot{AccountID: "a"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSnapshot_NonRetryableError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO snapshots").WillReturnError(pgError(pgerrcode.NotNullViolation))

	err := repo.UpsertSnapshot(context.Background(), models.StoredSnapshot{AccountID: "a"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSnapshot_Found(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	now := time.Now().UTC()
	rows := sqlmock.NewRows(snapshotColumns).
		AddRow("acc-1", "device_1", []byte{9}, []byte{8}, "snapshots/acc-1/device_1.json", int64(42), "1.0", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id, device_id, encrypted, iv, blob_key, client_timestamp, version, updated_at FROM snapshots WHERE account_id = $1 AND device_id <> $2 ORDER BY client_timestamp DESC, updated_at DESC LIMIT 1")).
		WithArgs("acc-1", "device_2").
		WillReturnRows(rows)

	got, err := repo.GetLatestSnapshot(context.Background(), "acc-1", "device_2")
	require.NoError(t, err)
	assert.Equal(t, "device_1", got.DeviceID)
	assert.Equal(t, []byte{9}, got.Payload.Encrypted)
	assert.Equal(t, "snapshots/acc-1/device_1.json", got.BlobKey)
	assert.Equal(t, int64(42), got.ClientTimestamp)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSnapshot_NotFound(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM snapshots").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLatestSnapshot(context.Background(), "nobody", "device_1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestGetLatestSnapshot_DBError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM snapshots").WillReturnError(errors.New("network"))

	_, err := repo.GetLatestSnapshot(context.Background(), "acc", "device_1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDeleteSnapshots(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM snapshots WHERE account_id = $1 RETURNING blob_key")).
		WithArgs("acc").
		WillReturnRows(sqlmock.NewRows([]string{"blob_key"}).
			AddRow("snapshots/acc/device_1.json").
			AddRow(nil))

	keys, err := repo.DeleteSnapshots(context.Background(), "acc")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/acc/device_1.json"}, keys)

	mock.ExpectQuery("DELETE FROM snapshots").WillReturnError(errors.New("boom"))
	_, err = repo.DeleteSnapshots(context.Background(), "acc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())
	ctx := context.Background()
	seen := time.Unix(1700000000, 0)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO devices (account_id,device_id,first_seen,last_seen) VALUES ($1,$2,$3,$4) ON CONFLICT (account_id, device_id)")).
		WithArgs("acc", "device_a", seen, seen).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.TouchDevice(ctx, "acc", "device_a", seen))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM devices WHERE account_id = $1")).
		WithArgs("acc").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	n, err := repo.CountDevices(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("down"))
	_, err = repo.CountDevices(ctx, "acc")
	assert.ErrorIs(t, err, ErrScanningRow)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
