package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
)

const deviceIDHeader = "X-Device-ID"

// withDeviceID requires the X-Device-ID header and stores it in the request
// context. The request logger gains a device_id field.
func (h *Handler) withDeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := strings.TrimSpace(r.Header.Get(deviceIDHeader))
		if deviceID == "" {
			logger.FromRequest(r).Err(ErrNoDeviceIDHeader).Send()
			utils.WriteError(w, app.MsgNoDeviceID, http.StatusBadRequest)
			return
		}

		ctx := utils.WithDeviceID(r.Context(), deviceID)
		l := logger.FromContext(ctx)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("device_id", deviceID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
