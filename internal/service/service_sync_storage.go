// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

type syncStorageService struct {
	snapshots store.SnapshotStorage
	devices   store.DeviceRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncStorageService builds the server side of the sync protocol over
// the given storages.
func NewSyncStorageService(snapshots store.SnapshotStorage, devices store.DeviceRepository, logger *logger.Logger) SyncStorageService {
	return &syncStorageService{
		snapshots: snapshots,
		devices:   devices,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *syncStorageService) Upload(ctx context.Context, accountID, deviceID string, request models.UploadRequest) error {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	if err := s.touch(ctx, accountID, deviceID, now); err != nil {
		return err
	}

	err := s.snapshots.Save(ctx, models.StoredSnapshot{
		AccountID:       accountID,
		DeviceID:        deviceID,
		Payload:         request.Data,
		ClientTimestamp: request.Timestamp,
		Version:         request.Version,
		UpdatedAt:       now,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*syncStorageService.Upload").
			Str("account_id", accountID).
			Str("device_id", deviceID).
			Msg("failed to save snapshot")
		return fmt.Errorf("save snapshot: %w", err)
	}

	log.Debug().
		Str("account_id", accountID).
		Str("device_id", deviceID).
		Int("bytes", len(request.Data.Encrypted)).
		Msg("snapshot stored")
	return nil
}

func (s *syncStorageService) Download(ctx context.Context, accountID, deviceID string) (models.DownloadResponse, error) {
	if err := s.touch(ctx, accountID, deviceID, s.now().UTC()); err != nil {
		return models.DownloadResponse{}, err
	}

	snapshot, err := s.snapshots.LoadLatest(ctx, accountID, deviceID)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return models.DownloadResponse{}, ErrRemoteSnapshotNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncStorageService.Download").
			Str("account_id", accountID).
			Msg("failed to load snapshot")
		return models.DownloadResponse{}, fmt.Errorf("load snapshot: %w", err)
	}

	return models.DownloadResponse{
		Data:      snapshot.Payload,
		Timestamp: snapshot.ClientTimestamp,
		DeviceID:  snapshot.DeviceID,
	}, nil
}

func (s *syncStorageService) Clear(ctx context.Context, accountID, deviceID string) error {
	if err := s.touch(ctx, accountID, deviceID, s.now().UTC()); err != nil {
		return err
	}

	if err := s.snapshots.Delete(ctx, accountID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncStorageService.Clear").
			Str("account_id", accountID).
			Msg("failed to delete snapshots")
		return fmt.Errorf("delete snapshots: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", accountID).Str("device_id", deviceID).Msg("account snapshots cleared")
	return nil
}

func (s *syncStorageService) DeviceCount(ctx context.Context, accountID, deviceID string) (int, error) {
	if err := s.touch(ctx, accountID, deviceID, s.now().UTC()); err != nil {
		return 0, err
	}

	count, err := s.devices.CountDevices(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("count devices: %w", err)
	}
	return count, nil
}

func (s *syncStorageService) touch(ctx context.Context, accountID, deviceID string, at time.Time) error {
	if accountID == "" {
		return ErrNoAccountID
	}
	if deviceID == "" {
		return ErrNoDeviceID
	}
	if err := s.devices.TouchDevice(ctx, accountID, deviceID, at); err != nil {
		return fmt.Errorf("register device: %w", err)
	}
	return nil
}
