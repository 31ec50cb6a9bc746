package customHttpClient

import (
	"net/http"
	"time"

	"github.com/akolanti/DocBridgeAPI/internal/config"
)

// shared by the identity and ingestion clients so connections to the backends are reused
var customTransport = &http.Transport{
	Proxy:               http.ProxyFromEnvironment,
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// NewClient returns a pooled client; every request made through it is bound by timeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = config.BackendTimeout
	}
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
