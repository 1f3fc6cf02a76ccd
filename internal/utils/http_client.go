package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the whole resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with baseURL and timeout set.
// A zero timeout leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
