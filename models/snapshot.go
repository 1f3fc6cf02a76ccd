// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncSnapshot is the whole synchronisable state of one device. It is
// serialised to JSON, encrypted, and uploaded as a single opaque payload.
type SyncSnapshot struct {
	// ClipboardHistory is ordered most recent first.
	ClipboardHistory []ClipboardItem `json:"clipboardHistory"`

	// Templates are the user's saved templates.
	Templates []Template `json:"templates"`

	// Settings are the user preferences.
	Settings Settings `json:"settings"`

	// LastModified is the snapshot build time in Unix milliseconds.
	LastModified int64 `json:"lastModified"`

	// DeviceID identifies the device that produced the snapshot.
	DeviceID string `json:"deviceId"`
}

// EncryptedPayload is an AES-256-GCM ciphertext with its 12-byte nonce.
// The server stores it as-is and never sees the key.
type EncryptedPayload struct {
	// Encrypted is the ciphertext with the GCM tag appended.
	Encrypted []byte `json:"encrypted"`

	// IV is the nonce used for this payload only.
	IV []byte `json:"iv"`
}
