package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/models"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{})
	require.NoError(t, err)

	assert.Equal(t, models.TierFree, cfg.App.Tier)
	assert.Equal(t, DefaultLocalDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, int64(DefaultLocalQuotaBytes), cfg.Storage.QuotaBytes)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultClipboardPollInterval, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

func TestNewClientConfig_Overrides(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{
		App:     App{Tier: "premium", Headless: true},
		Storage: Storage{Local: Local{DSN: "/tmp/c.db", QuotaBytes: 1}},
		Adapter: Adapter{HTTPAddress: "https://sync.example.com/sync", Token: "t", RequestTimeout: time.Second},
		Workers: Workers{SyncInterval: time.Minute, ClipboardPollInterval: time.Millisecond},
	})
	require.NoError(t, err)

	assert.Equal(t, models.TierPremium, cfg.App.Tier)
	assert.True(t, cfg.App.Headless)
	assert.Equal(t, "/tmp/c.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(1), cfg.Storage.QuotaBytes)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{
			name: "unknown tier",
			cfg:  StructuredConfig{App: App{Tier: "gold"}},
			want: ErrInvalidAppConfigs,
		},
		{
			name: "memory dsn",
			cfg:  StructuredConfig{Storage: Storage{Local: Local{DSN: ":memory:"}}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "negative quota",
			cfg:  StructuredConfig{Storage: Storage{Local: Local{QuotaBytes: -1}}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "sync url without host",
			cfg:  StructuredConfig{Adapter: Adapter{HTTPAddress: "not a url", Token: "t"}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "sync url without token",
			cfg:  StructuredConfig{Adapter: Adapter{HTTPAddress: "http://localhost:8080/sync"}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative sync interval",
			cfg:  StructuredConfig{Workers: Workers{SyncInterval: -time.Second}},
			want: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newClientConfig(&tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateServer(t *testing.T) {
	valid := StructuredConfig{
		App:     App{TokenSignKey: "k", TokenIssuer: "i"},
		Storage: Storage{DB: DB{DSN: "postgres://x"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	require.NoError(t, valid.ValidateServer())

	noDSN := valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.ValidateServer(), ErrInvalidStorageConfigs)

	s3NoRegion := valid
	s3NoRegion.Storage.S3.Bucket = "b"
	assert.ErrorIs(t, s3NoRegion.ValidateServer(), ErrInvalidStorageConfigs)

	noAddr := valid
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.ValidateServer(), ErrInvalidServerConfigs)

	noKey := valid
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, noKey.ValidateServer(), ErrInvalidAppConfigs)
}
