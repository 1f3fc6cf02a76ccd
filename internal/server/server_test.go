package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/handler"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/clip-keeper/internal/service"
)

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServer_ServesAndStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := servicemock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("9.9.9").AnyTimes()

	cfg := config.Server{HTTPAddress: freeAddress(t), RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
