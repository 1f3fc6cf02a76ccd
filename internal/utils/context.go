// Package utils holds small helpers shared by the client and the sync
// server: typed context keys, JSON response writing, the resty client
// wrapper, JWT issuing and parsing, and device identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored here
// never collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey carries the account taken from the bearer token subject.
	AccountIDCtxKey = contextKey("accountID")

	// DeviceIDCtxKey carries the value of the X-Device-ID header.
	DeviceIDCtxKey = contextKey("deviceID")
)

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetAccountIDFromContext reports the account stored by the auth middleware.
// ok is false when the value is missing, empty or of another type.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}

// GetDeviceIDFromContext reports the device stored by the device middleware.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
