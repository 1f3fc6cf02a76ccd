package models

import "time"

// StoredSnapshot is the server-side record of an account's latest upload.
type StoredSnapshot struct {
	// AccountID owns the snapshot; taken from the bearer token subject.
	AccountID string

	// DeviceID is the device that uploaded it.
	DeviceID string

	// Payload is the opaque encrypted snapshot.
	Payload EncryptedPayload

	// ClientTimestamp is the uploader's clock in Unix milliseconds.
	ClientTimestamp int64

	// Version is the payload format version.
	Version string

	// BlobKey is the object key when the payload lives in object storage.
	BlobKey string

	// UpdatedAt is the server time of the last write.
	UpdatedAt time.Time
}

// Device is a client the server has seen for an account.
type Device struct {
	AccountID string
	DeviceID  string
	FirstSeen time.Time
	LastSeen  time.Time
}
