package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/handler/message"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
)

type cliFixture struct {
	app       *App
	clipboard *servicemock.MockClipboardService
	templates *servicemock.MockTemplateService
	settings  *servicemock.MockSettingsService
	keys      *servicemock.MockKeyManager
	sync      *servicemock.MockClientSyncService
	out       bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		clipboard: servicemock.NewMockClipboardService(ctrl),
		templates: servicemock.NewMockTemplateService(ctrl),
		settings:  servicemock.NewMockSettingsService(ctrl),
		keys:      servicemock.NewMockKeyManager(ctrl),
		sync:      servicemock.NewMockClientSyncService(ctrl),
	}
	services := &service.ClientServices{
		Clipboard: f.clipboard,
		Templates: f.templates,
		Settings:  f.settings,
		Keys:      f.keys,
		Sync:      f.sync,
	}

	app, err := NewApp(services, message.NewDispatcher(services, nil, logger.Nop()), nil, nil, logger.Nop())
	require.NoError(t, err)
	f.app = app

	f.settings.EXPECT().Load(gomock.Any()).Return(nil)
	f.clipboard.EXPECT().Load(gomock.Any()).Return(nil)
	f.templates.EXPECT().Load(gomock.Any()).Return(nil)
	f.sync.EXPECT().Init(gomock.Any()).Return(nil)
	f.sync.EXPECT().Close()
	return f
}

func (f *cliFixture) run(args ...string) error {
	return NewCLI(f.app, models.NewAppBuildInfo("1.0.0", "2026-03-14", "abc123"), &f.out).
		Run(context.Background(), append([]string{"clipkeeper"}, args...))
}

func TestCLI_SyncEnable(t *testing.T) {
	f := newCLIFixture(t)
	f.sync.EXPECT().Enable(gomock.Any()).Return(models.SyncReport{Uploads: 1, Items: 4, Templates: 2}, nil)

	require.NoError(t, f.run("sync", "enable"))
	assert.Equal(t, "Synced: uploaded 4 items, 2 templates\n", f.out.String())
}

func TestCLI_SyncEnable_NotEntitled(t *testing.T) {
	f := newCLIFixture(t)
	f.sync.EXPECT().Enable(gomock.Any()).Return(models.SyncReport{}, service.ErrSyncNotEntitled)

	assert.ErrorIs(t, f.run("sync", "enable"), service.ErrSyncNotEntitled)
}

func TestCLI_SyncDisable(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantClear bool
	}{
		{name: "keep remote", args: []string{"sync", "disable"}, wantClear: false},
		{name: "clear remote", args: []string{"sync", "disable", "--clear"}, wantClear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			f.sync.EXPECT().Disable(gomock.Any(), tt.wantClear).Return(nil)

			require.NoError(t, f.run(tt.args...))
			assert.Contains(t, f.out.String(), "Cloud sync disabled")
		})
	}
}

func TestCLI_SyncNowAndStatus(t *testing.T) {
	f := newCLIFixture(t)
	f.sync.EXPECT().SyncNow(gomock.Any()).Return(models.SyncReport{Uploads: 2, Merged: true, Items: 7}, nil)

	require.NoError(t, f.run("sync", "now"))
	assert.Contains(t, f.out.String(), "merged remote changes, 7 items")

	g := newCLIFixture(t)
	g.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{Enabled: true, State: models.SyncIdle, DeviceID: "device_a", DeviceCount: 3})

	require.NoError(t, g.run("sync", "status"))
	assert.Contains(t, g.out.String(), "Cloud sync: idle")
	assert.Contains(t, g.out.String(), "Device: device_a (3 on account)")
	assert.Contains(t, g.out.String(), "Last sync: never")
}

func TestCLI_SyncNow_Disabled(t *testing.T) {
	f := newCLIFixture(t)
	f.sync.EXPECT().SyncNow(gomock.Any()).Return(models.SyncReport{}, service.ErrSyncDisabled)

	err := f.run("sync", "now")
	require.Error(t, err)
	assert.Equal(t, service.ErrSyncDisabled.Error(), err.Error())
}

func TestCLI_KeyExportImport(t *testing.T) {
	f := newCLIFixture(t)
	gomock.InOrder(
		f.keys.EXPECT().EnsureKey(gomock.Any()).Return(nil),
		f.keys.EXPECT().ExportKey(gomock.Any(), "hunter2").Return("wrapped-key", nil),
	)

	require.NoError(t, f.run("key", "export", "--passphrase", "hunter2"))
	assert.Equal(t, "wrapped-key\n", f.out.String())

	g := newCLIFixture(t)
	g.keys.EXPECT().ImportKey(gomock.Any(), "wrapped-key", "hunter2").Return(nil)

	require.NoError(t, g.run("key", "import", "-p", "hunter2", "wrapped-key"))
	assert.Contains(t, g.out.String(), "Encryption key imported")
}

func TestCLI_KeyCommands_RequireArguments(t *testing.T) {
	t.Setenv("CLIPKEEPER_PASSPHRASE", "")

	f := newCLIFixture(t)
	assert.ErrorIs(t, f.run("key", "export"), ErrPassphraseRequired)

	g := newCLIFixture(t)
	assert.ErrorIs(t, g.run("key", "import", "-p", "x"), ErrKeyBlobRequired)
}

func TestCLI_AddAndHistory(t *testing.T) {
	f := newCLIFixture(t)
	f.clipboard.EXPECT().Add(gomock.Any(), "remember this", models.ManualSource()).Return(service.AddResult{Added: true}, nil)

	require.NoError(t, f.run("add", "remember", "this"))

	g := newCLIFixture(t)
	g.clipboard.EXPECT().History().Return([]models.ClipboardItem{
		{ID: 2, Type: models.TypeURL, Preview: "https://example.com", Favorite: true},
		{ID: 1, Type: models.TypeText, Preview: "hello"},
	})

	require.NoError(t, g.run("history"))
	assert.Equal(t, "* 2  url    https://example.com\n  1  text   hello\n", g.out.String())
}

func TestCLI_Add_Empty(t *testing.T) {
	f := newCLIFixture(t)
	assert.ErrorIs(t, f.run("add"), ErrNothingToAdd)
}

func TestCLI_Export(t *testing.T) {
	f := newCLIFixture(t)
	f.clipboard.EXPECT().History().Return([]models.ClipboardItem{{ID: 1, Content: "a,b", Type: models.TypeText}})
	f.settings.EXPECT().Get().Return(models.DefaultSettings())

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, f.run("export", "--format", "csv", "-o", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a,b"`)
	assert.Contains(t, f.out.String(), "Exported to "+path)
}

func TestCLI_Export_BadFormat(t *testing.T) {
	f := newCLIFixture(t)
	assert.Error(t, f.run("export", "--format", "pdf"))
}

func TestCLI_Version(t *testing.T) {
	f := newCLIFixture(t)

	require.NoError(t, f.run("version"))
	assert.Contains(t, f.out.String(), "Build version: 1.0.0")
	assert.Contains(t, f.out.String(), "Build commit: abc123")
}

func TestCLI_LoadFailureStopsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := servicemock.NewMockSettingsService(ctrl)
	syncSvc := servicemock.NewMockClientSyncService(ctrl)
	services := &service.ClientServices{Settings: settings, Sync: syncSvc}

	app, err := NewApp(services, message.NewDispatcher(services, nil, logger.Nop()), nil, nil, logger.Nop())
	require.NoError(t, err)

	settings.EXPECT().Load(gomock.Any()).Return(assert.AnError)
	syncSvc.EXPECT().Close().AnyTimes()

	err = NewCLI(app, models.NewAppBuildInfo("", "", ""), &bytes.Buffer{}).
		Run(context.Background(), []string{"clipkeeper", "sync", "now"})
	assert.ErrorIs(t, err, assert.AnError)
}
