// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request middlewares. Callers can match against
// them with [errors.Is].
var (
	// ErrNoDeviceIDHeader is returned by withDeviceID when the X-Device-ID
	// header is absent or blank.
	ErrNoDeviceIDHeader = errors.New("empty `X-Device-ID` header")

	// ErrNoAccountInToken is returned by auth when a verified token carries
	// no account.
	ErrNoAccountInToken = errors.New("token has no account")
)
