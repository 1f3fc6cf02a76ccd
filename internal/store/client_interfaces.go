package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is the local persistence used by the client. Values are
// opaque bytes (JSON documents in practice).
//
// Get returns only the keys that exist. Set writes all pairs atomically and
// fails with [ErrQuotaExceeded] when the store is out of space.
type KeyValueStore interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, values map[string][]byte) error
}
