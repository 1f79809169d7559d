package app

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/mag7pulse/config"
	"github.com/guttosm/mag7pulse/internal/returns"
)

// InitUpstream builds the returns API client from the configuration.
//
// Parameters:
//   - cfg (config.Config): application configuration; only cfg.Upstream is read.
//
// Behavior:
//   - Validates that API_BASE_URL is an absolute http(s) URL.
//   - Builds an *http.Client with transport-level dial and idle limits. No
//     overall client timeout is set; each request is bounded by its context.
//   - Does not contact the upstream. Reachability is reported by /readyz.
//
// Returns:
//   - *returns.Client: client safe for concurrent use.
//   - error: if the base URL is invalid.
func InitUpstream(cfg config.Config) (*returns.Client, error) {
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q: expected http(s)://host[/path]", cfg.Upstream.BaseURL)
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return returns.NewClient(cfg.Upstream.BaseURL, httpClient), nil
}

// upstreamOpener is an indirection used by InitializeApp; overridden in tests.
var upstreamOpener = InitUpstream
