package crypto

import "github.com/MKhiriev/clip-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds all client-side cryptography. It knows nothing about
// storage, the network or sync state; it only makes, wraps and uses keys.
//
// Snapshot encryption:
//
//	key     = GenerateKey()                  (256-bit AES key)
//	payload = Encrypt(json, key)             (fresh 12-byte nonce per call)
//	json    = Decrypt(payload, key)          (fails with ErrDecryption)
//
// Key storage and sharing:
//
//	jwk  = EncodeJWK(key)                    (persisted locally)
//	blob = WrapKey(key, passphrase)          (moved to another device)
//	key  = UnwrapKey(blob, passphrase)
type KeyChainService interface {
	// GenerateKey returns 32 random bytes from the OS CSPRNG.
	GenerateKey() ([]byte, error)

	// Encrypt seals plaintext with AES-256-GCM under key.
	// Every call draws a new random nonce; reusing one under the same key
	// would break GCM.
	Encrypt(plaintext, key []byte) (models.EncryptedPayload, error)

	// Decrypt opens payload. Any authentication failure, including a wrong
	// key, a tampered ciphertext or a nonce of the wrong size, returns an
	// error wrapping ErrDecryption.
	Decrypt(payload models.EncryptedPayload, key []byte) ([]byte, error)

	// EncodeJWK exports key as an "oct" JSON Web Key.
	EncodeJWK(key []byte) ([]byte, error)

	// DecodeJWK imports a key produced by EncodeJWK.
	DecodeJWK(data []byte) ([]byte, error)

	// WrapKey encrypts key under a KEK derived from passphrase with Argon2id.
	// The result is base64(salt || nonce || ciphertext).
	WrapKey(key []byte, passphrase string) (string, error)

	// UnwrapKey reverses WrapKey. A wrong passphrase yields ErrDecryption.
	UnwrapKey(blob, passphrase string) ([]byte, error)
}
