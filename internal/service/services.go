package service

import (
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

// Services groups the sync server services.
type Services struct {
	AuthService        AuthService
	SyncStorageService SyncStorageService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	syncStorage := ChainSyncStorage(
		NewSyncStorageService(storages.Snapshots, storages.Devices, logger),
		NewSyncStorageValidationService(),
	)

	return &Services{
		AuthService:        NewAuthService(cfg.App, logger),
		SyncStorageService: syncStorage,
		AppInfoService:     appInfo,
	}, nil
}

// ChainSyncStorage wraps base with each wrapper in turn. The last wrapper
// is the outermost one and sees a request first.
func ChainSyncStorage(base SyncStorageService, wrappers ...SyncStorageServiceWrapper) SyncStorageService {
	svc := base
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}
