package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusMethodNotAllowed:      ErrMethodNotAllowed,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx and a *TransportError otherwise.
func mapHTTPError(op string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[code]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &TransportError{
		Op:         op,
		StatusCode: code,
		Body:       strings.TrimSpace(string(resp.Body())),
		Err:        sentinel,
	}
}
