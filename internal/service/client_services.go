package service

import (
	"context"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/crypto"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

// ClientServices groups the client core.
type ClientServices struct {
	Clipboard ClipboardService
	Templates TemplateService
	Settings  SettingsService
	Keys      KeyManager
	Sync      ClientSyncService
}

// NewClientServices wires the client core over kv. transport may be nil
// to run without a sync server.
//
// The history capacity follows the smaller of the tier limit and the
// maxItems setting, and is re-applied whenever settings change.
func NewClientServices(kv store.KeyValueStore, transport adapter.SyncTransport, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	entitlements := StaticEntitlements(cfg.App.Tier)

	clipboard := NewClipboardService(kv, entitlements.Limits().HistoryItems, logger.Component("clipboard"))
	templates := NewTemplateService(kv, clipboard, entitlements, logger.Component("templates"))

	settings := newSettingsService(kv, logger.Component("settings"))
	settings.onChange = func(ctx context.Context, s models.Settings) error {
		return clipboard.SetCapacity(ctx, effectiveCapacity(entitlements.Limits(), s))
	}

	keys := NewKeyManager(kv, crypto.NewKeyChainService(), logger.Component("keys"))

	syncSvc := NewClientSyncService(ClientSyncDeps{
		KV:           kv,
		Clipboard:    clipboard,
		Templates:    templates,
		Settings:     settings,
		Keys:         keys,
		Transport:    transport,
		Entitlements: entitlements,
	}, cfg.Workers.SyncInterval, logger.Component("sync"))

	return &ClientServices{
		Clipboard: clipboard,
		Templates: templates,
		Settings:  settings,
		Keys:      keys,
		Sync:      syncSvc,
	}
}

// Load reads all persisted state and starts sync when it was left on.
// Settings go first so the history is loaded under the right capacity.
func (s *ClientServices) Load(ctx context.Context) error {
	if err := s.Settings.Load(ctx); err != nil {
		return err
	}
	if err := s.Clipboard.Load(ctx); err != nil {
		return err
	}
	if err := s.Templates.Load(ctx); err != nil {
		return err
	}
	return s.Sync.Init(ctx)
}

// Close stops background sync.
func (s *ClientServices) Close() {
	s.Sync.Close()
}

type staticEntitlements struct {
	limits models.TierLimits
}

// StaticEntitlements grants the limits of a fixed tier.
func StaticEntitlements(tier models.Tier) Entitlements {
	return staticEntitlements{limits: tier.Limits()}
}

func (e staticEntitlements) Limits() models.TierLimits {
	return e.limits
}

func effectiveCapacity(limits models.TierLimits, settings models.Settings) int {
	capacity := limits.HistoryItems
	if maxItems, ok := settings.Int(models.SettingMaxItems); ok && maxItems > 0 && maxItems < capacity {
		capacity = maxItems
	}
	return capacity
}
