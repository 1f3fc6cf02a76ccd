// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/clip-keeper/models"
)

const (
	keySize   = 32
	saltSize  = 16
	nonceSize = 12

	jwkKeyType   = "oct"
	jwkAlgorithm = "A256GCM"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning used by WrapKey and UnwrapKey.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the OWASP Argon2id
// parameters: 1 iteration, 64 MiB, 4 threads.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

// jwk is the subset of RFC 7517 needed for a symmetric AES key.
type jwk struct {
	Kty    string   `json:"kty"`
	Alg    string   `json:"alg"`
	K      string   `json:"k"`
	Ext    bool     `json:"ext"`
	KeyOps []string `json:"key_ops,omitempty"`
}

func (k *keyChainService) GenerateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

func (k *keyChainService) Encrypt(plaintext, key []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedPayload{
		Encrypted: gcm.Seal(nil, nonce, plaintext, nil),
		IV:        nonce,
	}, nil
}

func (k *keyChainService) Decrypt(payload models.EncryptedPayload, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload.IV) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrDecryption, len(payload.IV), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, payload.IV, payload.Encrypted, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

func (k *keyChainService) EncodeJWK(key []byte) ([]byte, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	return json.Marshal(jwk{
		Kty:    jwkKeyType,
		Alg:    jwkAlgorithm,
		K:      base64.RawURLEncoding.EncodeToString(key),
		Ext:    true,
		KeyOps: []string{"encrypt", "decrypt"},
	})
}

func (k *keyChainService) DecodeJWK(data []byte) ([]byte, error) {
	var j jwk
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJWK, err)
	}
	if j.Kty != jwkKeyType {
		return nil, fmt.Errorf("%w: kty %q", ErrMalformedJWK, j.Kty)
	}

	key, err := base64.RawURLEncoding.DecodeString(j.K)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJWK, err)
	}
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// WrapKey derives a KEK from passphrase and a fresh salt, then seals key
// with it. Layout of the decoded blob: salt (16) | nonce (12) | ciphertext.
func (k *keyChainService) WrapKey(key []byte, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}
	if len(key) != keySize {
		return "", ErrInvalidKey
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := k.Encrypt(key, k.deriveKEK(passphrase, salt))
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, saltSize+nonceSize+len(sealed.Encrypted))
	blob = append(blob, salt...)
	blob = append(blob, sealed.IV...)
	blob = append(blob, sealed.Encrypted...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChainService) UnwrapKey(blob, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	if len(raw) <= saltSize+nonceSize {
		return nil, ErrMalformedBlob
	}

	salt := raw[:saltSize]
	payload := models.EncryptedPayload{
		IV:        raw[saltSize : saltSize+nonceSize],
		Encrypted: raw[saltSize+nonceSize:],
	}

	key, err := k.Decrypt(payload, k.deriveKEK(passphrase, salt))
	if err != nil {
		return nil, err
	}
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}

func (k *keyChainService) deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, keySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
