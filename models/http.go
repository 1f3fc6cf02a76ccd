package models

// PayloadVersion is the upload format version understood by the sync server.
const PayloadVersion = "1.0"

// UploadRequest is the body of POST /upload.
type UploadRequest struct {
	// Data is the encrypted snapshot.
	Data EncryptedPayload `json:"data"`

	// Timestamp is the client clock at upload time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Version is the payload format version, see [PayloadVersion].
	Version string `json:"version"`
}

// DownloadResponse is the body of a successful GET /download.
type DownloadResponse struct {
	Data      EncryptedPayload `json:"data"`
	Timestamp int64            `json:"timestamp,omitempty"`
	DeviceID  string           `json:"deviceId,omitempty"`
}

// DevicesResponse is the body of GET /devices.
type DevicesResponse struct {
	DeviceCount int `json:"deviceCount"`
}

// ErrorResponse is returned by the sync server on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
