// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/clip-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAccountID targets the owner of a stored snapshot.
	FieldAccountID = "account_id"

	// FieldDeviceID targets the uploading device of a stored snapshot.
	FieldDeviceID = "device_id"

	// FieldIV targets the AES-GCM nonce of the payload.
	FieldIV = "iv"

	// FieldEncrypted targets the ciphertext of the payload.
	FieldEncrypted = "encrypted"

	// FieldVersion targets the payload format version.
	FieldVersion = "version"

	// FieldTimestamp targets the client clock at upload time.
	FieldTimestamp = "timestamp"
)

// gcmNonceSize is the only nonce length clients produce.
const gcmNonceSize = 12

// SnapshotValidator checks sync uploads before they reach storage. It never
// looks inside the ciphertext.
type SnapshotValidator struct{}

// NewSnapshotValidator returns a [Validator] for [models.UploadRequest],
// [models.EncryptedPayload] and [models.StoredSnapshot] values.
func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.EncryptedPayload:
		return v.validatePayload(value, fields...)
	case *models.EncryptedPayload:
		return v.validatePayload(*value, fields...)

	case models.StoredSnapshot:
		return v.validateStoredSnapshot(ctx, value, fields...)
	case *models.StoredSnapshot:
		return v.validateStoredSnapshot(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SnapshotValidator) validatePayload(payload models.EncryptedPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIV, FieldEncrypted}
	}

	for _, f := range fields {
		switch f {
		case FieldIV:
			if len(payload.IV) != gcmNonceSize {
				return ErrInvalidIV
			}
		case FieldEncrypted:
			if len(payload.Encrypted) == 0 {
				return ErrEmptyPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SnapshotValidator) validateUploadRequest(_ context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIV, FieldEncrypted, FieldVersion, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldIV, FieldEncrypted:
			if err := v.validatePayload(request.Data, f); err != nil {
				return err
			}
		case FieldVersion:
			if strings.TrimSpace(request.Version) == "" {
				return ErrInvalidVersion
			}
		case FieldTimestamp:
			if request.Timestamp < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SnapshotValidator) validateStoredSnapshot(_ context.Context, snapshot models.StoredSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldDeviceID, FieldIV, FieldEncrypted, FieldVersion, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if snapshot.AccountID == "" {
				return ErrInvalidAccountID
			}
		case FieldDeviceID:
			if snapshot.DeviceID == "" {
				return ErrInvalidDeviceID
			}
		case FieldIV, FieldEncrypted:
			if err := v.validatePayload(snapshot.Payload, f); err != nil {
				return err
			}
		case FieldVersion:
			if strings.TrimSpace(snapshot.Version) == "" {
				return ErrInvalidVersion
			}
		case FieldTimestamp:
			if snapshot.ClientTimestamp < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
