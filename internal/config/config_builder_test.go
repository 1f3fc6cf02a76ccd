package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := t.TempDir() + "/config.json"
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func clientJSONConfig() StructuredJSONConfig {
	var j StructuredJSONConfig
	j.Adapter.HTTPAddress = "https://json.example.com/sync"
	j.Adapter.RequestTimeout = Duration(15 * time.Second)
	j.Adapter.Token = "json-token"
	j.Workers.SyncInterval = Duration(10 * time.Minute)
	j.Workers.ClipboardPollInterval = Duration(750 * time.Millisecond)
	j.Storage.Local.DSN = "/var/lib/clipkeeper/json.db"
	j.Storage.Local.QuotaBytes = 4096
	return j
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_FirstLayerWins(t *testing.T) {
	b := newConfigBuilder().
		add("env", &StructuredConfig{
			Adapter: Adapter{HTTPAddress: "https://env.example.com/sync"},
			Storage: Storage{Local: Local{QuotaBytes: 1024}},
		}, nil).
		add("flags", &StructuredConfig{
			Adapter: Adapter{HTTPAddress: "https://flag.example.com/sync", Token: "flag-token"},
			Workers: Workers{ClipboardPollInterval: 2 * time.Second},
		}, nil)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/sync", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flag-token", cfg.Adapter.Token, "later layers fill unset fields")
	assert.Equal(t, int64(1024), cfg.Storage.Local.QuotaBytes)
	assert.Equal(t, 2*time.Second, cfg.Workers.ClipboardPollInterval)
}

func TestBuild_LayerErrorNamesSource(t *testing.T) {
	b := newConfigBuilder().
		add("env", &StructuredConfig{}, nil).
		add("json /tmp/broken.json", nil, assert.AnError)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "json /tmp/broken.json")
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsClientSettings(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":                 "https://env.example.com/sync",
		"WORKERS_CLIPBOARD_POLL_INTERVAL": "250ms",
		"STORAGE_LOCAL_DSN":               "/tmp/env.db",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	assert.Equal(t, "env", b.layers[0].name)

	cfg := b.layers[0].cfg
	assert.Equal(t, "https://env.example.com/sync", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Local.DSN)
}

func TestWithEnv_BadValueRecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_SYNC_INTERVAL": "soon"})

	b := newConfigBuilder().withEnv()
	assert.Empty(t, b.layers)
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "env")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder().add("env", &StructuredConfig{}, nil).withJSON()

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_FillsClientSettings(t *testing.T) {
	path := writeTempJSONConfig(t, clientJSONConfig())

	cfg, err := newConfigBuilder().
		add("env", &StructuredConfig{JSONFilePath: path, Adapter: Adapter{Token: "env-token"}}, nil).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com/sync", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env-token", cfg.Adapter.Token, "env is not overridden by the file")
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, Local{DSN: "/var/lib/clipkeeper/json.db", QuotaBytes: 4096}, cfg.Storage.Local)
}

func TestWithJSON_LastPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, StructuredJSONConfig{})
	last := writeTempJSONConfig(t, clientJSONConfig())

	b := newConfigBuilder().
		add("env", &StructuredConfig{JSONFilePath: first}, nil).
		add("flags", &StructuredConfig{JSONFilePath: last}, nil).
		withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 3)
	assert.Equal(t, "json "+last, b.layers[2].name)
	assert.Equal(t, "json-token", b.layers[2].cfg.Adapter.Token)
}

func TestWithJSON_Errors(t *testing.T) {
	malformed := t.TempDir() + "/bad.json"
	require.NoError(t, os.WriteFile(malformed, []byte("{not valid json"), 0o600))

	badDuration := t.TempDir() + "/duration.json"
	require.NoError(t, os.WriteFile(badDuration, []byte(`{"workers":{"clipboard_poll_interval":"often"}}`), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: "/nonexistent/config.json"},
		{name: "malformed", path: malformed},
		{name: "bad duration", path: badDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfigBuilder().
				add("env", &StructuredConfig{JSONFilePath: tt.path}, nil).
				withJSON().
				build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

// ── client view ───────────────────────────────────────────────────────────────

func TestBuild_FeedsClientConfig(t *testing.T) {
	path := writeTempJSONConfig(t, clientJSONConfig())

	merged, err := newConfigBuilder().
		add("env", &StructuredConfig{JSONFilePath: path, App: App{Tier: "premium"}}, nil).
		withJSON().
		build()
	require.NoError(t, err)

	client, err := newClientConfig(merged)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/clipkeeper/json.db", client.Storage.DB.DSN)
	assert.Equal(t, int64(4096), client.Storage.QuotaBytes)
	assert.Equal(t, 750*time.Millisecond, client.Workers.ClipboardPollInterval)
	assert.Equal(t, "json-token", client.Adapter.Token)
}
