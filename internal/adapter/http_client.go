package adapter

import (
	"net/http"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

// NewHTTPClient returns the client shared by probes, token exchange and the
// API mailer.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &http.Client{Timeout: timeout}
}
