package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
)

// testServer bundles a router with the service mocks behind it.
type testServer struct {
	router  http.Handler
	sync    *servicemock.MockSyncStorageService
	auth    *servicemock.MockAuthService
	appInfo *servicemock.MockAppInfoService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		sync:    servicemock.NewMockSyncStorageService(ctrl),
		auth:    servicemock.NewMockAuthService(ctrl),
		appInfo: servicemock.NewMockAppInfoService(ctrl),
	}
	ts.router = NewHandler(&service.Services{
		AuthService:        ts.auth,
		SyncStorageService: ts.sync,
		AppInfoService:     ts.appInfo,
	}, logger.Nop()).Init()
	return ts
}

// authorized expects one token check that resolves to account "acc".
func (ts *testServer) authorized() {
	ts.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{AccountID: "acc"}, nil)
}

func (ts *testServer) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

var syncHeaders = map[string]string{
	"Authorization": "Bearer good-token",
	"X-Device-ID":   "device_a",
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_Version(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := ts.do(http.MethodGet, "/api/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_BuildInfo(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "", "abc"))

	rec := ts.do(http.MethodGet, "/api/build", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","buildDate":"N/A","buildCommit":"abc"}`, rec.Body.String())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/api/nonexistent", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	t.Run("public route", func(t *testing.T) {
		rec := newTestServer(t).do(http.MethodPost, "/api/version", nil, nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})

	t.Run("sync route", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorized()

		rec := ts.do(http.MethodGet, "/sync/upload", nil, syncHeaders)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
		assert.Equal(t, "method not allowed", errorBody(t, rec))
	})
}

func TestInit_SyncResponsesAreGzipped(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().DeviceCount(gomock.Any(), "acc", "device_a").Return(2, nil)

	headers := map[string]string{"Accept-Encoding": "gzip"}
	for k, v := range syncHeaders {
		headers[k] = v
	}
	rec := ts.do(http.MethodGet, "/sync/devices", nil, headers)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deviceCount":2}`, string(plain))
}

func TestInit_GzipRequestBody(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().Upload(gomock.Any(), "acc", "device_a", gomock.Any()).Return(nil)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(uploadBody(t))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	headers := map[string]string{"Content-Encoding": "gzip"}
	for k, v := range syncHeaders {
		headers[k] = v
	}
	rec := ts.do(http.MethodPost, "/sync/upload", buf.Bytes(), headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}
