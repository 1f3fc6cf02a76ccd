package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/clip-keeper/models"
)

// Client defaults applied when a value is left unset.
const (
	DefaultLocalDSN              = "clipkeeper.db"
	DefaultLocalQuotaBytes       = 10 << 20
	DefaultSyncInterval          = 5 * time.Minute
	DefaultRequestTimeout        = 30 * time.Second
	DefaultClipboardPollInterval = time.Second
)

// ClientApp holds client application settings.
type ClientApp struct {
	// Tier decides history and template limits and whether sync is allowed.
	Tier models.Tier
	// Headless disables the terminal UI.
	Headless bool
}

// ClientAdapter holds the sync server connection.
type ClientAdapter struct {
	// HTTPAddress is the sync base URL; empty keeps the client offline.
	HTTPAddress string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
	// Token is the bearer credential.
	Token string
}

// ClientDB contains the local database location.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
	// QuotaBytes caps the local store size.
	QuotaBytes int64
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	SyncInterval          time.Duration
	ClipboardPollInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration, fills client defaults and
// validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	tier, err := models.ParseTier(cfg.App.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Tier:     tier,
			Headless: cfg.App.Headless,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.Local.DSN},
			QuotaBytes: cfg.Storage.Local.QuotaBytes,
		},
		Workers: ClientWorkers{
			SyncInterval:          orDefault(cfg.Workers.SyncInterval, DefaultSyncInterval),
			ClipboardPollInterval: orDefault(cfg.Workers.ClipboardPollInterval, DefaultClipboardPollInterval),
		},
	}

	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultLocalDSN
	}
	if clientCfg.Storage.QuotaBytes == 0 {
		clientCfg.Storage.QuotaBytes = DefaultLocalQuotaBytes
	}

	return clientCfg, clientCfg.validate()
}

func orDefault(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
