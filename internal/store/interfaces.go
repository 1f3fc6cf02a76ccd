package store

import (
	"context"
	"time"

	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists snapshot records in the relational database.
// Each device of an account owns one row holding its latest upload.
type SnapshotRepository interface {
	UpsertSnapshot(ctx context.Context, snapshot models.StoredSnapshot) error

	// GetLatestSnapshot returns the newest row of the account uploaded by
	// any device other than excludeDeviceID.
	GetLatestSnapshot(ctx context.Context, accountID, excludeDeviceID string) (models.StoredSnapshot, error)

	// DeleteSnapshots removes every row of the account and returns the
	// blob keys the rows pointed to.
	DeleteSnapshots(ctx context.Context, accountID string) ([]string, error)
}

// SnapshotBlobStore keeps encrypted payload bodies outside the database.
type SnapshotBlobStore interface {
	PutPayload(ctx context.Context, key string, body []byte) error
	GetPayload(ctx context.Context, key string) ([]byte, error)
	DeletePayload(ctx context.Context, key string) error
}

// SnapshotStorage is what the sync service talks to. It hides whether the
// payload body lives in the database or in object storage.
type SnapshotStorage interface {
	Save(ctx context.Context, snapshot models.StoredSnapshot) error
	LoadLatest(ctx context.Context, accountID, excludeDeviceID string) (models.StoredSnapshot, error)
	Delete(ctx context.Context, accountID string) error
}

// DeviceRepository tracks which devices synced for an account.
type DeviceRepository interface {
	TouchDevice(ctx context.Context, accountID, deviceID string, seenAt time.Time) error
	CountDevices(ctx context.Context, accountID string) (int, error)
}
