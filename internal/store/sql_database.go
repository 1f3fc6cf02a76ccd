package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// ErrorClassificator decides whether a failed database call may succeed if
// repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps *sql.DB with the driver specific pieces the repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded schema migrations for the connected driver.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return fmt.Errorf("no migrations registered for this database")
	}
	return db.migrate(db.DB)
}

// withRetry runs fn, repeating it with exponential backoff while the
// classifier reports the error as transient.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(50*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "*DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
