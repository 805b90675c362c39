package clients

import (
	"net/http"
	"time"
)

// timeout bounds a single outbound delivery so a stalled endpoint
// cannot hold a caller's goroutine.
const timeout = time.Second * 15

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient is the outbound client used for webhook deliveries.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
