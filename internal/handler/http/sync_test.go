// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/validators"
	"github.com/MKhiriev/clip-keeper/models"
)

func samplePayload() models.EncryptedPayload {
	return models.EncryptedPayload{Encrypted: []byte("ciphertext"), IV: bytes.Repeat([]byte{7}, 12)}
}

func uploadBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(models.UploadRequest{Data: samplePayload(), Timestamp: 1700000000000, Version: models.PayloadVersion})
	require.NoError(t, err)
	return body
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().Upload(gomock.Any(), "acc", "device_a", models.UploadRequest{
		Data:      samplePayload(),
		Timestamp: 1700000000000,
		Version:   models.PayloadVersion,
	}).Return(nil)

	rec := ts.do(http.MethodPost, "/sync/upload", uploadBody(t), syncHeaders)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       []byte("{"),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "too large",
			body:       append([]byte(`{"version":"`), bytes.Repeat([]byte("a"), maxUploadBytes+1)...),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "payload too large",
		},
		{
			name:       "bad iv",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidIV),
			wantStatus: http.StatusBadRequest,
			wantError:  "iv must be 12 bytes",
		},
		{
			name:       "missing version",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidVersion),
			wantStatus: http.StatusBadRequest,
			wantError:  "version is not specified",
		},
		{
			name:       "storage failure",
			serviceErr: fmt.Errorf("save snapshot: %w", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "unexpected failure",
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.authorized()

			body := tt.body
			if body == nil {
				body = uploadBody(t)
				ts.sync.EXPECT().Upload(gomock.Any(), "acc", "device_a", gomock.Any()).Return(tt.serviceErr)
			}

			rec := ts.do(http.MethodPost, "/sync/upload", body, syncHeaders)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rec))
		})
	}
}

func TestDownload(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().Download(gomock.Any(), "acc", "device_a").
		Return(models.DownloadResponse{Data: samplePayload(), Timestamp: 5, DeviceID: "device_b"}, nil)

	rec := ts.do(http.MethodGet, "/sync/download", nil, syncHeaders)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.DownloadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, samplePayload(), got.Data)
	assert.Equal(t, "device_b", got.DeviceID)
}

func TestDownload_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().Download(gomock.Any(), "acc", "device_a").
		Return(models.DownloadResponse{}, service.ErrRemoteSnapshotNotFound)

	rec := ts.do(http.MethodGet, "/sync/download", nil, syncHeaders)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no snapshot found", errorBody(t, rec))
}

func TestClear(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().Clear(gomock.Any(), "acc", "device_a").Return(nil)

	rec := ts.do(http.MethodDelete, "/sync/clear", nil, syncHeaders)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestDevices(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().DeviceCount(gomock.Any(), "acc", "device_a").Return(3, nil)

	rec := ts.do(http.MethodGet, "/sync/devices", nil, syncHeaders)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deviceCount":3}`, rec.Body.String())
}
