// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/models"
)

// mapTransportError translates a transport failure into a service error.
// The original error stays in the chain so the status code remains
// reachable through errors.As.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error

	switch msg := errorMessage(err); {
	case errors.Is(err, adapter.ErrRemoteSnapshotNotFound):
		return ErrRemoteSnapshotNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgVersionIsNotSpecified:
			sentinel = ErrVersionIsNotSpecified
		case app.MsgNoDeviceID:
			sentinel = ErrNoDeviceID
		default:
			sentinel = ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgTokenIsExpired:
			sentinel = ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			sentinel = ErrTokenIsExpiredOrInvalid
		case app.MsgNoAccountID:
			sentinel = ErrNoAccountID
		default:
			sentinel = ErrSyncUnauthorized
		}

	case errors.Is(err, adapter.ErrForbidden):
		sentinel = ErrSyncUnauthorized
	}

	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// errorMessage extracts the "error" field of a JSON error body, falling
// back to the raw body.
func errorMessage(err error) string {
	var te *adapter.TransportError
	if !errors.As(err, &te) {
		return ""
	}

	var body models.ErrorResponse
	if json.Unmarshal([]byte(te.Body), &body) == nil && body.Error != "" {
		return body.Error
	}
	return te.Body
}
