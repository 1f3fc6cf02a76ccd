// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the sync server and the
// client that talks to it.
//
// The server writes Msg* constants into the "error" field of its JSON error
// bodies; the client matches on the same constants to turn a rejected
// request into a service error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoAuthorization is returned when the Authorization header is
	// missing or is not a bearer credential.
	MsgNoAuthorization = "bearer token required"

	// MsgTokenIsExpired is returned when a bearer token is well formed but
	// past its expiry time.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountID is returned when a verified token carries no subject.
	MsgNoAccountID = "no account ID provided"

	// MsgNoDeviceID is returned when the X-Device-ID header is absent.
	MsgNoDeviceID = "device ID header is required"

	// MsgVersionIsNotSpecified is returned when an upload omits the payload
	// format version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgInvalidIV is returned when the nonce of an upload is not 12 bytes.
	MsgInvalidIV = "iv must be 12 bytes"

	// MsgEmptyPayload is returned when an upload carries no ciphertext.
	MsgEmptyPayload = "encrypted payload is empty"

	// MsgSnapshotNotFound is returned by download when no other device of
	// the account has uploaded yet.
	MsgSnapshotNotFound = "no snapshot found"

	MsgMethodNotAllowed = "method not allowed"
	MsgPayloadTooLarge  = "payload too large"
)
