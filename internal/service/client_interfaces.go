package service

import (
	"context"
	"time"

	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// ClipboardService owns the ordered clipboard history: newest first, never
// longer than the current capacity, mirrored to the key-value store after
// every mutation. All mutations are serialised.
type ClipboardService interface {
	// Load reads the persisted history once at start-up.
	Load(ctx context.Context) error

	// Add classifies content and prepends it. Empty content and content
	// equal to the immediately previous add are ignored (Added is false).
	Add(ctx context.Context, content string, source models.Source) (AddResult, error)

	// History returns a copy of the current history.
	History() []models.ClipboardItem

	// Get returns the item with id.
	Get(id int64) (models.ClipboardItem, error)

	Delete(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) error
	Clear(ctx context.Context) error

	// MarkUsed records a copy-back: bumps usageCount, sets lastUsed and
	// moves the item to the top.
	MarkUsed(ctx context.Context, id int64) (models.ClipboardItem, error)

	// Replace swaps in a merged history from sync. Items are taken as-is,
	// only the capacity is enforced.
	Replace(ctx context.Context, items []models.ClipboardItem) error

	// SetCapacity changes the ceiling and trims the history if needed.
	SetCapacity(ctx context.Context, capacity int) error
	Capacity() int
}

// AddResult describes the outcome of [ClipboardService.Add].
type AddResult struct {
	// Added is false when the content was empty or debounced.
	Added bool

	Item models.ClipboardItem

	// Evicted counts items dropped to recover from a full store.
	Evicted int
}

// TemplateService manages reusable text templates.
type TemplateService interface {
	// Load reads stored templates, seeding the defaults when none exist.
	Load(ctx context.Context) error

	List() []models.Template

	// Save creates a template when ID is zero and updates it otherwise.
	Save(ctx context.Context, template models.Template) (models.Template, error)

	Delete(ctx context.Context, id int64) error

	// Use renders the template with values, records the use and adds the
	// result to the clipboard history.
	Use(ctx context.Context, id int64, values map[string]string) (string, error)

	// Replace swaps in merged templates from sync.
	Replace(ctx context.Context, templates []models.Template) error
}

// SettingsService manages user preferences.
type SettingsService interface {
	Load(ctx context.Context) error

	// Get returns the stored settings over the defaults.
	Get() models.Settings

	// Stored returns only the keys the user has set. Sync snapshots carry
	// these, so a default never overrides a value set on another device.
	Stored() models.Settings

	// Update applies patch key by key and persists the result.
	Update(ctx context.Context, patch models.Settings) (models.Settings, error)

	// Replace swaps in merged settings from sync.
	Replace(ctx context.Context, settings models.Settings) error
}

// KeyManager owns the snapshot encryption key. Key material never leaves
// this service except through ExportKey, wrapped by a passphrase.
type KeyManager interface {
	// EnsureKey loads the persisted key or generates and persists a new one.
	// It is idempotent. Failures wrap ErrKeyInitialization.
	EnsureKey(ctx context.Context) error

	// HasKey reports whether a key is cached in memory.
	HasKey() bool

	// Encrypt marshals v to JSON and seals it under a fresh nonce.
	Encrypt(ctx context.Context, v any) (models.EncryptedPayload, error)

	// Decrypt opens payload and unmarshals it into target. Authentication
	// failures wrap crypto.ErrDecryption.
	Decrypt(ctx context.Context, payload models.EncryptedPayload, target any) error

	// ExportKey wraps the key with passphrase for transfer to another device.
	ExportKey(ctx context.Context, passphrase string) (string, error)

	// ImportKey replaces the local key with one produced by ExportKey.
	ImportKey(ctx context.Context, blob, passphrase string) error
}

// ClientSyncService is the sync engine. At most one cycle runs at a time;
// a request that finds a cycle in flight fails with ErrSyncInProgress.
type ClientSyncService interface {
	// Init loads the device id and sync flags and, when sync was left
	// enabled, prepares the key and starts the scheduler.
	Init(ctx context.Context) error

	// Enable turns sync on and runs the first cycle. A failing first
	// cycle is returned but sync stays enabled.
	Enable(ctx context.Context) (models.SyncReport, error)

	// Disable stops the scheduler and, when clearRemote is set, deletes
	// the remote snapshot.
	Disable(ctx context.Context, clearRemote bool) error

	// SyncNow runs one cycle immediately.
	SyncNow(ctx context.Context) (models.SyncReport, error)

	Status(ctx context.Context) models.SyncStatus

	// Close stops the scheduler.
	Close()
}

// ClientSyncJob runs sync cycles on a schedule. The next tick is armed only
// after the previous cycle has finished.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
	Running() bool
}

// Entitlements reports the limits of the current subscription.
type Entitlements interface {
	Limits() models.TierLimits
}
