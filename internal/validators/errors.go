package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidDeviceID  = errors.New("invalid device ID")
	ErrInvalidIV        = errors.New("iv must be 12 bytes")
	ErrEmptyPayload     = errors.New("encrypted payload is empty")
	ErrInvalidVersion   = errors.New("payload version is not specified")
	ErrInvalidTimestamp = errors.New("invalid client timestamp")
)
