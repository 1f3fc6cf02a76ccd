package crypto

import "errors"

var (
	// ErrDecryption is returned when a ciphertext fails authentication.
	// Retrying with the same inputs can never succeed.
	ErrDecryption = errors.New("decryption failed")

	ErrInvalidKey      = errors.New("invalid key length")
	ErrMalformedJWK    = errors.New("malformed jwk")
	ErrMalformedBlob   = errors.New("malformed wrapped key")
	ErrEmptyPassphrase = errors.New("passphrase is empty")
)
