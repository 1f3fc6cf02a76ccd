// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the world outside the client core: the remote
// sync service and the operating system clipboard.
//
// [SyncTransport] is a thin stateless wrapper over four HTTP endpoints. It
// only ever sees ciphertext. Non-2xx replies become a [*TransportError]
// whose Err is one of the sentinels in errors.go, so callers can branch with
// [errors.Is]. A 404 from download is the normal "nothing uploaded yet"
// state and is reported as [ErrRemoteSnapshotNotFound].
package adapter

import (
	"context"

	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_transport_mock.go -package=mock

// SyncTransport is the client side of the sync wire protocol. Every request
// carries the bearer token and the X-Device-ID header.
type SyncTransport interface {
	// SetDeviceID sets the identifier sent in X-Device-ID.
	SetDeviceID(deviceID string)

	// DeviceID returns the identifier set by SetDeviceID.
	DeviceID() string

	// Upload sends POST /upload with the payload and the client timestamp
	// in Unix milliseconds.
	Upload(ctx context.Context, payload models.EncryptedPayload, timestamp int64) error

	// Download sends GET /download. It returns ErrRemoteSnapshotNotFound
	// when the server holds no snapshot for the account.
	Download(ctx context.Context) (models.EncryptedPayload, error)

	// Clear sends DELETE /clear, removing the remote snapshot.
	Clear(ctx context.Context) error

	// DeviceCount sends GET /devices.
	DeviceCount(ctx context.Context) (int, error)
}

// SystemClipboard reads and writes the operating system clipboard.
type SystemClipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}
