package client

import "errors"

var (
	ErrNoServices         = errors.New("client services are not created")
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrKeyBlobRequired    = errors.New("exported key is required")
	ErrNothingToAdd       = errors.New("text to add is required")
)
