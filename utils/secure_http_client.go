package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"

	"news-fetcher/config"
)

// PinnedHTTPClient builds an HTTP client whose dialer only connects to the
// IP address that URL validation already resolved and vetted. Pinning the
// address closes the window between validation-time and connect-time DNS
// answers, while TLS verification and SNI keep using the hostname.
//
// Redirects are never followed by the client itself; the caller inspects
// each 3xx response and re-validates the next hop before building a new
// pinned client for it.
func PinnedHTTPClient(cfg *config.HTTPConfig, hostname string, addr net.IP) *http.Client {
	dialer := &net.Dialer{
		Timeout: cfg.ConnectTimeout,
	}
	expectedHost := strings.ToLower(strings.TrimSuffix(hostname, "."))

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, dialAddr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(dialAddr)
			if err != nil {
				return nil, err
			}
			if strings.ToLower(strings.TrimSuffix(host, ".")) != expectedHost {
				return nil, fmt.Errorf("refusing to dial unexpected host %q", host)
			}
			return dialer.DialContext(ctx, network, net.JoinHostPort(addr.String(), port))
		},
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: expectedHost,
		},
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
		DisableKeepAlives:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ReadTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
