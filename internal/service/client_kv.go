package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/store"
)

// loadJSON decodes the value under key into target. found is false when
// the key is absent or empty.
func loadJSON(ctx context.Context, kv store.KeyValueStore, key string, target any) (bool, error) {
	values, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, kv store.KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = kv.Set(ctx, map[string][]byte{key: data}); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
