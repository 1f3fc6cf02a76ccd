// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the lifecycle state of the sync engine.
type SyncState string

const (
	// SyncDisabled means sync is off or no key is available.
	SyncDisabled SyncState = "disabled"

	// SyncIdle means sync is enabled and no cycle is running.
	SyncIdle SyncState = "idle"

	// SyncSyncing means a cycle is in flight.
	SyncSyncing SyncState = "syncing"

	// SyncError is entered when a cycle fails; the engine returns to idle
	// right after recording the failure.
	SyncError SyncState = "error"
)

// SyncStatus is a point-in-time view of the sync engine for front-ends.
type SyncStatus struct {
	// Enabled reports whether the user turned sync on.
	Enabled bool `json:"enabled"`

	// State is the current engine state.
	State SyncState `json:"state"`

	// InProgress is true while a cycle holds the single-flight gate.
	InProgress bool `json:"inProgress"`

	// LastSync is the completion time of the last successful cycle.
	LastSync *time.Time `json:"lastSync,omitempty"`

	// LastError describes the most recent failed cycle, if any.
	LastError string `json:"lastError,omitempty"`

	// DeviceID is this device's identifier.
	DeviceID string `json:"deviceId"`

	// DeviceCount is the number of devices the server has seen for the account.
	DeviceCount int `json:"deviceCount"`
}

// SyncReport summarises one completed sync cycle.
type SyncReport struct {
	// Uploads is 1 when only the local snapshot was pushed and 2 when a
	// merged snapshot was pushed back as well.
	Uploads int `json:"uploads"`

	// Merged reports whether a remote snapshot was found and merged.
	Merged bool `json:"merged"`

	// Items is the history length after the cycle.
	Items int `json:"items"`

	// Templates is the template count after the cycle.
	Templates int `json:"templates"`
}
