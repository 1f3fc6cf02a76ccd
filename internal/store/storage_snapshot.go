// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// snapshotStorage is the default [SnapshotStorage].
//
// Metadata always goes to the repository. When a blob store is configured
// the encrypted body is written there and the row only keeps its key.
type snapshotStorage struct {
	repository SnapshotRepository
	blobs      SnapshotBlobStore
	logger     *logger.Logger
}

// NewSnapshotStorage combines a repository with an optional blob store
// (nil keeps payloads inline).
func NewSnapshotStorage(repository SnapshotRepository, blobs SnapshotBlobStore, logger *logger.Logger) SnapshotStorage {
	return &snapshotStorage{
		repository: repository,
		blobs:      blobs,
		logger:     logger,
	}
}

func blobKeyFor(accountID, deviceID string) string {
	return "snapshots/" + accountID + "/" + deviceID + ".json"
}

func (s *snapshotStorage) Save(ctx context.Context, snapshot models.StoredSnapshot) error {
	if s.blobs != nil {
		body, err := json.Marshal(snapshot.Payload)
		if err != nil {
			return fmt.Errorf("error encoding payload: %w", err)
		}

		key := blobKeyFor(snapshot.AccountID, snapshot.DeviceID)
		if err = s.blobs.PutPayload(ctx, key, body); err != nil {
			return err
		}

		snapshot.BlobKey = key
		snapshot.Payload = models.EncryptedPayload{}
	}

	return s.repository.UpsertSnapshot(ctx, snapshot)
}

func (s *snapshotStorage) LoadLatest(ctx context.Context, accountID, excludeDeviceID string) (models.StoredSnapshot, error) {
	snapshot, err := s.repository.GetLatestSnapshot(ctx, accountID, excludeDeviceID)
	if err != nil {
		return models.StoredSnapshot{}, err
	}

	if snapshot.BlobKey == "" {
		return snapshot, nil
	}
	if s.blobs == nil {
		return models.StoredSnapshot{}, fmt.Errorf("snapshot %q is stored in object storage, but none is configured", snapshot.BlobKey)
	}

	body, err := s.blobs.GetPayload(ctx, snapshot.BlobKey)
	if err != nil {
		return models.StoredSnapshot{}, err
	}
	if err = json.Unmarshal(body, &snapshot.Payload); err != nil {
		return models.StoredSnapshot{}, fmt.Errorf("error decoding payload: %w", err)
	}

	return snapshot, nil
}

func (s *snapshotStorage) Delete(ctx context.Context, accountID string) error {
	keys, err := s.repository.DeleteSnapshots(ctx, accountID)
	if err != nil {
		return err
	}

	if s.blobs == nil {
		return nil
	}
	for _, key := range keys {
		if err = s.blobs.DeletePayload(ctx, key); err != nil {
			// the row is gone, an orphaned object is harmless
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to delete payload object")
		}
	}

	return nil
}
