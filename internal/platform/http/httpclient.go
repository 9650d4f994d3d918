// Package http builds the outbound HTTP client used for upstream API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// RoundTripperFunc wraps a transport, e.g. to add instrumentation.
type RoundTripperFunc func(next http.RoundTripper) http.RoundTripper

// NewHTTPClient creates an HTTP client tuned for calling the upstream API.
//
// Settings:
//   - Proxy: honours HTTP_PROXY and friends
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - Dialer.KeepAlive: how long reusable TCP connections are kept
//   - MaxIdleConns / MaxIdleConnsPerHost: every request goes to one host,
//     so the per-host limit is raised to match
//   - IdleConnTimeout: how long an idle connection is kept
//   - TLSHandshakeTimeout: upper bound for the HTTPS handshake
//   - Client.Timeout: whole-request timeout passed in by the caller
//
// wrappers are applied in order, the first one being the outermost.
// http.DefaultClient has no timeout, so always use this constructor.
func NewHTTPClient(timeout time.Duration, wrappers ...RoundTripperFunc) *http.Client {
	var rt http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		rt = wrappers[i](rt)
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}
