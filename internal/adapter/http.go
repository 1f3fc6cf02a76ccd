// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

// DeviceIDHeader names the header that identifies the calling device.
const DeviceIDHeader = "X-Device-ID"

const (
	opUpload   = "upload"
	opDownload = "download"
	opClear    = "clear"
	opDevices  = "devices"
)

type httpSyncTransport struct {
	client *utils.HTTPClient
	token  string

	mu       sync.RWMutex
	deviceID string

	logger *logger.Logger
}

// NewHTTPSyncTransport builds the resty implementation of [SyncTransport].
// The base URL is cfg.HTTPAddress with a default http scheme; endpoint paths
// are appended to it, so ".../sync" yields ".../sync/upload" and so on.
func NewHTTPSyncTransport(cfg config.ClientAdapter, logger *logger.Logger) (SyncTransport, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{logger})

	return &httpSyncTransport{
		client: client,
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoServerAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSyncTransport) SetDeviceID(deviceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceID = strings.TrimSpace(deviceID)
}

func (h *httpSyncTransport) DeviceID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.deviceID
}

func (h *httpSyncTransport) Upload(ctx context.Context, payload models.EncryptedPayload, timestamp int64) error {
	req, err := h.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadRequest{Data: payload, Timestamp: timestamp, Version: models.PayloadVersion}).
		Post("/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(opUpload, resp)
}

func (h *httpSyncTransport) Download(ctx context.Context) (models.EncryptedPayload, error) {
	req, err := h.request(ctx)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	resp, err := req.Get("/download")
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("download request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.EncryptedPayload{}, ErrRemoteSnapshotNotFound
	}
	if err = mapHTTPError(opDownload, resp); err != nil {
		return models.EncryptedPayload{}, err
	}

	var body models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("decode download response: %w", err)
	}
	if len(body.Data.Encrypted) == 0 {
		return models.EncryptedPayload{}, ErrRemoteSnapshotNotFound
	}

	return body.Data, nil
}

func (h *httpSyncTransport) Clear(ctx context.Context) error {
	req, err := h.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/clear")
	if err != nil {
		return fmt.Errorf("clear request: %w", err)
	}

	return mapHTTPError(opClear, resp)
}

func (h *httpSyncTransport) DeviceCount(ctx context.Context) (int, error) {
	req, err := h.request(ctx)
	if err != nil {
		return 0, err
	}

	var body models.DevicesResponse
	resp, err := req.SetResult(&body).Get("/devices")
	if err != nil {
		return 0, fmt.Errorf("devices request: %w", err)
	}
	if err = mapHTTPError(opDevices, resp); err != nil {
		return 0, err
	}

	return body.DeviceCount, nil
}

func (h *httpSyncTransport) request(ctx context.Context) (*resty.Request, error) {
	deviceID := h.DeviceID()
	if deviceID == "" {
		return nil, ErrNoDeviceID
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(DeviceIDHeader, deviceID)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req, nil
}

// IsNotFound reports whether err means no remote snapshot exists.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRemoteSnapshotNotFound)
}

// restyLogger routes resty's own diagnostics into zerolog so they never
// reach the terminal.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error().Str("func", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Str("func", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Str("func", "resty").Msgf(format, v...)
}
