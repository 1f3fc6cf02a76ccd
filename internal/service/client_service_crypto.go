// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/clip-keeper/internal/crypto"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

type keyManager struct {
	kv       store.KeyValueStore
	keyChain crypto.KeyChainService

	mu  sync.Mutex
	key []byte

	logger *logger.Logger
}

// NewKeyManager builds the snapshot key owner. The key is persisted under
// store.KeyEncryptionKey as a JWK.
func NewKeyManager(kv store.KeyValueStore, keyChain crypto.KeyChainService, logger *logger.Logger) KeyManager {
	return &keyManager{kv: kv, keyChain: keyChain, logger: logger}
}

func (k *keyManager) EnsureKey(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return nil
	}

	values, err := k.kv.Get(ctx, store.KeyEncryptionKey)
	if err != nil {
		return fmt.Errorf("%w: read key: %v", ErrKeyInitialization, err)
	}

	if raw, ok := values[store.KeyEncryptionKey]; ok && len(raw) > 0 {
		key, err := k.keyChain.DecodeJWK(raw)
		if err != nil {
			return fmt.Errorf("%w: import key: %v", ErrKeyInitialization, err)
		}
		k.key = key
		return nil
	}

	key, err := k.keyChain.GenerateKey()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyInitialization, err)
	}
	if err = k.persist(ctx, key); err != nil {
		return err
	}

	k.logger.Info().Str("func", "*keyManager.EnsureKey").Msg("generated new sync encryption key")
	k.key = key
	return nil
}

func (k *keyManager) HasKey() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.key != nil
}

func (k *keyManager) Encrypt(ctx context.Context, v any) (models.EncryptedPayload, error) {
	if err := k.EnsureKey(ctx); err != nil {
		return models.EncryptedPayload{}, err
	}

	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("marshal payload: %w", err)
	}

	k.mu.Lock()
	key := k.key
	k.mu.Unlock()

	return k.keyChain.Encrypt(plaintext, key)
}

func (k *keyManager) Decrypt(ctx context.Context, payload models.EncryptedPayload, target any) error {
	if err := k.EnsureKey(ctx); err != nil {
		return err
	}

	k.mu.Lock()
	key := k.key
	k.mu.Unlock()

	plaintext, err := k.keyChain.Decrypt(payload, key)
	if err != nil {
		return err
	}

	// A payload that authenticates but does not decode is still unusable.
	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: decode plaintext: %v", crypto.ErrDecryption, err)
	}
	return nil
}

func (k *keyManager) ExportKey(ctx context.Context, passphrase string) (string, error) {
	if err := k.EnsureKey(ctx); err != nil {
		return "", err
	}

	k.mu.Lock()
	key := k.key
	k.mu.Unlock()

	return k.keyChain.WrapKey(key, passphrase)
}

func (k *keyManager) ImportKey(ctx context.Context, blob, passphrase string) error {
	key, err := k.keyChain.UnwrapKey(blob, passphrase)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyInitialization, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if err = k.persist(ctx, key); err != nil {
		return err
	}
	k.key = key
	return nil
}

func (k *keyManager) persist(ctx context.Context, key []byte) error {
	jwk, err := k.keyChain.EncodeJWK(key)
	if err != nil {
		return fmt.Errorf("%w: export key: %v", ErrKeyInitialization, err)
	}
	if err = k.kv.Set(ctx, map[string][]byte{store.KeyEncryptionKey: jwk}); err != nil {
		return fmt.Errorf("%w: persist key: %v", ErrKeyInitialization, err)
	}
	return nil
}
