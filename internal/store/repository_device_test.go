package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

func TestTouchDevice_Success(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())
	seen := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO devices (account_id,device_id,first_seen,last_seen) VALUES ($1,$2,$3,$4) ON CONFLICT (account_id, device_id)")).
		WithArgs("acc-1", "device_a", seen, seen).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchDevice(context.Background(), "acc-1", "device_a", seen))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchDevice_RetriesConnectionFailure(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())
	seen := time.Now().UTC()

	query := regexp.QuoteMeta("INSERT INTO devices")
	mock.ExpectExec(query).WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchDevice(context.Background(), "acc-1", "device_a", seen))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchDevice_ConstraintErrorNotRetried(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO devices")).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	err := repo.TouchDevice(context.Background(), "acc-1", "", time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDevices(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM devices WHERE account_id = $1")).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountDevices(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDevices_QueryError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewDeviceRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM devices")).
		WillReturnError(assert.AnError)

	_, err := repo.CountDevices(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}
