package utils

import (
	"net"
	"net/http"
	"time"
)

// NewHttpClient returns a client that opens a fresh connection per request
// and gives up after timeout.
func NewHttpClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		TLSHandshakeTimeout: timeout,
		DisableKeepAlives:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
