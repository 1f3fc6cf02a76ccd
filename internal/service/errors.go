package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrItemNotFound         = errors.New("clipboard item not found")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrTemplateLimitReached = errors.New("template limit reached for current plan")
	ErrInvalidTemplate      = errors.New("template name and content are required")

	ErrKeyInitialization = errors.New("encryption key could not be initialised")
	ErrNoEncryptionKey   = errors.New("encryption key is not loaded")

	ErrSyncDisabled      = errors.New("sync is disabled")
	ErrSyncInProgress    = errors.New("sync already in progress")
	ErrSyncNotEntitled   = errors.New("cloud sync is not available on current plan")
	ErrSyncNotConfigured = errors.New("sync server is not configured")

	ErrSyncUnauthorized        = errors.New("sync token rejected by server")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoAccountID             = errors.New("no account ID provided")
	ErrNoDeviceID              = errors.New("no device ID provided")
	ErrRemoteSnapshotNotFound  = errors.New("no snapshot uploaded for account")
)

// PersistenceError is returned when the clipboard history could not be
// written even after retries and emergency eviction. Evicted items were
// already dropped from memory, so the caller must surface it.
type PersistenceError struct {
	Evicted int
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Evicted > 0 {
		return fmt.Sprintf("persist clipboard history (after evicting %d items): %v", e.Evicted, e.Err)
	}
	return fmt.Sprintf("persist clipboard history: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Sync cycle steps named in SyncError.
const (
	StepBuild    = "build"
	StepEncrypt  = "encrypt"
	StepUpload   = "upload"
	StepDownload = "download"
	StepDecrypt  = "decrypt"
	StepMerge    = "merge"
	StepPersist  = "persist"
	StepReupload = "re-upload"
)

// SyncError reports the step at which a sync cycle failed.
type SyncError struct {
	Step string
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Step, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
