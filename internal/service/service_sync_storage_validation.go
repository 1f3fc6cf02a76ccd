package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/validators"
	"github.com/MKhiriev/clip-keeper/models"
)

// SyncStorageValidationService rejects malformed uploads before they reach
// the wrapped service. Validation failures wrap both ErrInvalidDataProvided
// and the validators sentinel.
type SyncStorageValidationService struct {
	inner     SyncStorageService
	validator validators.Validator
}

func NewSyncStorageValidationService() SyncStorageServiceWrapper {
	return &SyncStorageValidationService{
		validator: validators.NewSnapshotValidator(),
	}
}

func (v *SyncStorageValidationService) Upload(ctx context.Context, accountID, deviceID string, request models.UploadRequest) error {
	if err := v.checkIDs(accountID, deviceID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Upload(ctx, accountID, deviceID, request)
}

func (v *SyncStorageValidationService) Download(ctx context.Context, accountID, deviceID string) (models.DownloadResponse, error) {
	if err := v.checkIDs(accountID, deviceID); err != nil {
		return models.DownloadResponse{}, err
	}
	return v.inner.Download(ctx, accountID, deviceID)
}

func (v *SyncStorageValidationService) Clear(ctx context.Context, accountID, deviceID string) error {
	if err := v.checkIDs(accountID, deviceID); err != nil {
		return err
	}
	return v.inner.Clear(ctx, accountID, deviceID)
}

func (v *SyncStorageValidationService) DeviceCount(ctx context.Context, accountID, deviceID string) (int, error) {
	if err := v.checkIDs(accountID, deviceID); err != nil {
		return 0, err
	}
	return v.inner.DeviceCount(ctx, accountID, deviceID)
}

func (v *SyncStorageValidationService) Wrap(inner SyncStorageService) SyncStorageService {
	v.inner = inner
	return v
}

func (v *SyncStorageValidationService) checkIDs(accountID, deviceID string) error {
	if accountID == "" {
		return ErrNoAccountID
	}
	if deviceID == "" {
		return ErrNoDeviceID
	}
	return nil
}
