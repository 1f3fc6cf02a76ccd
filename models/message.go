package models

import "encoding/json"

// Message actions understood by the core.
const (
	ActionAddClipboardItem    = "add-clipboard-item"
	ActionGetClipboardHistory = "get-clipboard-history"
	ActionDeleteClipboardItem = "delete-clipboard-item"
	ActionToggleFavorite      = "toggle-favorite"
	ActionClearHistory        = "clear-history"
	ActionCopyItem            = "copy-item"
	ActionGetSyncStatus       = "get-sync-status"
	ActionSyncNow             = "sync-now"
	ActionExportHistory       = "export-history"
)

// Message is a request from a capturer or front-end to the core.
type Message struct {
	// Action selects the operation.
	Action string `json:"action"`

	// Content is the captured text for add-clipboard-item.
	Content string `json:"content,omitempty"`

	// Source is the raw source hint for add-clipboard-item, see [ParseSource].
	Source json.RawMessage `json:"source,omitempty"`

	// ID addresses an existing item.
	ID int64 `json:"id,omitempty"`

	// Format selects the export format for export-history.
	Format string `json:"format,omitempty"`
}

// MessageResponse is the reply to a [Message].
type MessageResponse struct {
	Success bool            `json:"success,omitempty"`
	History []ClipboardItem `json:"history,omitempty"`
	Status  *SyncStatus     `json:"status,omitempty"`
	Report  *SyncReport     `json:"report,omitempty"`
	Data    string          `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
