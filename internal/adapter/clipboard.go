package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type osClipboard struct{}

// NewSystemClipboard returns the clipboard of the running desktop session.
// On Linux it needs xclip, xsel or wl-clipboard on PATH.
func NewSystemClipboard() SystemClipboard {
	return osClipboard{}
}

func (osClipboard) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (osClipboard) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}
