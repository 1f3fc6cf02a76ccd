// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/models"
)

func validPayload() models.EncryptedPayload {
	return models.EncryptedPayload{
		Encrypted: []byte("ciphertext-and-tag"),
		IV:        bytes.Repeat([]byte{7}, 12),
	}
}

func validUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		Data:      validPayload(),
		Timestamp: 1700000000000,
		Version:   models.PayloadVersion,
	}
}

func validStoredSnapshot() models.StoredSnapshot {
	return models.StoredSnapshot{
		AccountID:       "acc",
		DeviceID:        "device_1",
		Payload:         validPayload(),
		ClientTimestamp: 1700000000000,
		Version:         models.PayloadVersion,
	}
}

func TestNewSnapshotValidator(t *testing.T) {
	require.NotNil(t, NewSnapshotValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSnapshotValidator()
	ctx := context.Background()

	req := validUploadRequest()
	payload := validPayload()
	snap := validStoredSnapshot()

	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.NoError(t, v.Validate(ctx, payload))
	assert.NoError(t, v.Validate(ctx, &payload))
	assert.NoError(t, v.Validate(ctx, snap))
	assert.NoError(t, v.Validate(ctx, &snap))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestValidate_UploadRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.UploadRequest)
		wantErr error
	}{
		{name: "valid", modify: func(*models.UploadRequest) {}},
		{name: "short iv", modify: func(r *models.UploadRequest) { r.Data.IV = make([]byte, 11) }, wantErr: ErrInvalidIV},
		{name: "long iv", modify: func(r *models.UploadRequest) { r.Data.IV = make([]byte, 16) }, wantErr: ErrInvalidIV},
		{name: "missing iv", modify: func(r *models.UploadRequest) { r.Data.IV = nil }, wantErr: ErrInvalidIV},
		{name: "empty ciphertext", modify: func(r *models.UploadRequest) { r.Data.Encrypted = nil }, wantErr: ErrEmptyPayload},
		{name: "missing version", modify: func(r *models.UploadRequest) { r.Version = "" }, wantErr: ErrInvalidVersion},
		{name: "blank version", modify: func(r *models.UploadRequest) { r.Version = "  " }, wantErr: ErrInvalidVersion},
		{name: "negative timestamp", modify: func(r *models.UploadRequest) { r.Timestamp = -1 }, wantErr: ErrInvalidTimestamp},
		{name: "zero timestamp", modify: func(r *models.UploadRequest) { r.Timestamp = 0 }},
	}

	v := NewSnapshotValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUploadRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UploadRequest_Fields(t *testing.T) {
	v := NewSnapshotValidator()
	req := validUploadRequest()
	req.Version = ""

	assert.NoError(t, v.Validate(context.Background(), req, FieldIV, FieldEncrypted))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldVersion), ErrInvalidVersion)
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldAccountID), ErrUnknownField)
}

func TestValidate_StoredSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *models.StoredSnapshot)
		wantErr error
	}{
		{name: "valid", modify: func(*models.StoredSnapshot) {}},
		{name: "no account", modify: func(s *models.StoredSnapshot) { s.AccountID = "" }, wantErr: ErrInvalidAccountID},
		{name: "no device", modify: func(s *models.StoredSnapshot) { s.DeviceID = "" }, wantErr: ErrInvalidDeviceID},
		{name: "bad iv", modify: func(s *models.StoredSnapshot) { s.Payload.IV = []byte{1} }, wantErr: ErrInvalidIV},
		{name: "no ciphertext", modify: func(s *models.StoredSnapshot) { s.Payload.Encrypted = []byte{} }, wantErr: ErrEmptyPayload},
		{name: "no version", modify: func(s *models.StoredSnapshot) { s.Version = "" }, wantErr: ErrInvalidVersion},
	}

	v := NewSnapshotValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validStoredSnapshot()
			tt.modify(&snap)

			err := v.Validate(context.Background(), snap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Payload_UnknownField(t *testing.T) {
	err := NewSnapshotValidator().Validate(context.Background(), validPayload(), FieldVersion)
	assert.ErrorIs(t, err, ErrUnknownField)
}
