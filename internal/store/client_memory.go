package store

import (
	"context"
	"sync"
)

// MemoryKeyValueStore is an in-process [KeyValueStore]. It backs tests and
// ephemeral sessions and enforces the same byte quota as the SQLite store.
type MemoryKeyValueStore struct {
	mu         sync.RWMutex
	data       map[string][]byte
	quotaBytes int64
}

// NewMemoryKeyValueStore creates an empty store. A positive quotaBytes caps
// the summed size of all values.
func NewMemoryKeyValueStore(quotaBytes int64) *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		data:       make(map[string][]byte),
		quotaBytes: quotaBytes,
	}
}

func (m *MemoryKeyValueStore) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

func (m *MemoryKeyValueStore) Set(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quotaBytes > 0 {
		var total int64
		for k, v := range m.data {
			if _, replaced := values[k]; !replaced {
				total += int64(len(v))
			}
		}
		for _, v := range values {
			total += int64(len(v))
		}
		if total > m.quotaBytes {
			return ErrQuotaExceeded
		}
	}

	for k, v := range values {
		m.data[k] = append([]byte(nil), v...)
	}
	return nil
}

// Size returns the summed size of all stored values.
func (m *MemoryKeyValueStore) Size() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, v := range m.data {
		total += int64(len(v))
	}
	return total
}
