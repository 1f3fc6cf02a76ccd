package store

import "errors"

// Sentinel errors returned by storages. Callers should match them with
// [errors.Is].
var (
	// ErrQuotaExceeded is returned when a write would push the local store
	// past its byte quota or the underlying database reports it is full.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrSnapshotNotFound is returned when an account has never uploaded a
	// snapshot or it was cleared.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrDBIsNil is returned by constructors given no database handle.
	ErrDBIsNil = errors.New("db is nil")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
