package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/internal/validators"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatuses is checked in order: validation failures wrap both a
// validators sentinel and service.ErrInvalidDataProvided, and the more
// specific message wins.
var errorStatuses = []errorStatus{
	{validators.ErrInvalidIV, http.StatusBadRequest, app.MsgInvalidIV},
	{validators.ErrEmptyPayload, http.StatusBadRequest, app.MsgEmptyPayload},
	{validators.ErrInvalidVersion, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoDeviceID, http.StatusBadRequest, app.MsgNoDeviceID},

	{service.ErrNoAccountID, http.StatusUnauthorized, app.MsgNoAccountID},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrRemoteSnapshotNotFound, http.StatusNotFound, app.MsgSnapshotNotFound},
	{store.ErrSnapshotNotFound, http.StatusNotFound, app.MsgSnapshotNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and answers with its mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}
