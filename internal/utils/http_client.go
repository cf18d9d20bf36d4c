package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Midnight (https://github.com/Sigi3012/Midnight)"

// HTTPClient is the resty client shared by the outbound adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
