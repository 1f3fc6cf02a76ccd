// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sync uploads on the server before they are
// stored. The server never sees plaintext, so only the envelope is
// checked: IV length, a non-empty ciphertext and the payload version.
//
// Field names passed to Validate restrict the check to those fields;
// without them every field is checked.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
