package message

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrNoSystemClipboard = errors.New("system clipboard is not available")
	ErrMissingItemID     = errors.New("item id is required")
)
