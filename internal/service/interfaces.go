package service

import (
	"context"

	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// SyncStorageService keeps the encrypted snapshots of the sync server. It
// stores whatever the client sends and never sees a key.
//
// Every call registers deviceID as seen for the account.
type SyncStorageService interface {
	// Upload replaces the snapshot last uploaded by deviceID.
	Upload(ctx context.Context, accountID, deviceID string, request models.UploadRequest) error

	// Download returns the newest snapshot uploaded by another device of the
	// account, or ErrRemoteSnapshotNotFound.
	Download(ctx context.Context, accountID, deviceID string) (models.DownloadResponse, error)

	// Clear removes every snapshot of the account.
	Clear(ctx context.Context, accountID, deviceID string) error

	// DeviceCount returns how many devices have synced for the account.
	DeviceCount(ctx context.Context, accountID, deviceID string) (int, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, accountID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SyncStorageServiceWrapper defines middleware composition for
// SyncStorageService. Implementations wrap an existing service to add
// behavior such as validation.
type SyncStorageServiceWrapper interface {
	Wrap(SyncStorageService) SyncStorageService
}
