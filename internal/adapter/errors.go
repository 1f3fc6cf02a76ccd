package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrRemoteSnapshotNotFound = errors.New("remote snapshot not found")
	ErrNoServerAddress        = errors.New("sync server address is empty")
	ErrNoDeviceID             = errors.New("device id is not set")
	ErrClipboardUnavailable   = errors.New("system clipboard unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// TransportError is a non-2xx reply from the sync server.
type TransportError struct {
	// Op is the endpoint operation: upload, download, clear or devices.
	Op string

	StatusCode int

	// Body is the trimmed response body, useful for diagnostics.
	Body string

	// Err is the sentinel matching StatusCode.
	Err error
}

func (e *TransportError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: http %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
