package utils

import "github.com/google/uuid"

// DeviceIDPrefix starts every generated device identifier.
const DeviceIDPrefix = "device_"

// NewUUID returns a time-ordered UUIDv7, falling back to v4 when the clock
// source fails.
func NewUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// NewDeviceID returns a fresh device identifier such as
// "device_0191f3a2-...".
func NewDeviceID() string {
	return DeviceIDPrefix + NewUUID()
}
