// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

// maxUploadBytes caps the request body of POST /sync/upload.
const maxUploadBytes = 10 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID, deviceID := identity(r)

	var request models.UploadRequest
	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Str("func", "*Handler.upload").Msg("upload body too large")
			utils.WriteError(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SyncStorageService.Upload(r.Context(), accountID, deviceID, request); err != nil {
		writeServiceError(w, r, "*Handler.upload", err)
		return
	}

	utils.WriteJSON(w, struct {
		Success bool `json:"success"`
	}{true}, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	accountID, deviceID := identity(r)

	response, err := h.services.SyncStorageService.Download(r.Context(), accountID, deviceID)
	if err != nil {
		writeServiceError(w, r, "*Handler.download", err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	accountID, deviceID := identity(r)

	if err := h.services.SyncStorageService.Clear(r.Context(), accountID, deviceID); err != nil {
		writeServiceError(w, r, "*Handler.clear", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) devices(w http.ResponseWriter, r *http.Request) {
	accountID, deviceID := identity(r)

	count, err := h.services.SyncStorageService.DeviceCount(r.Context(), accountID, deviceID)
	if err != nil {
		writeServiceError(w, r, "*Handler.devices", err)
		return
	}

	utils.WriteJSON(w, models.DevicesResponse{DeviceCount: count}, http.StatusOK)
}

// identity reads what auth and withDeviceID stored in the request context.
func identity(r *http.Request) (accountID, deviceID string) {
	accountID, _ = utils.GetAccountIDFromContext(r.Context())
	deviceID, _ = utils.GetDeviceIDFromContext(r.Context())
	return accountID, deviceID
}
