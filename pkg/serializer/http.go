/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cookiecutter-tools/cookierc/pkg/defaults"
)

const (
	// HttpReaderUserAgent identifies fetches made by this package.
	HttpReaderUserAgent = "cookierc/1.0"

	// httpReaderMaxBytes caps the size of a fetched record. Record files
	// are a few KB; anything larger is a wrong URL.
	httpReaderMaxBytes = 1 << 20
)

// Defaults for the HttpReader transport knobs.
var (
	HttpReaderDefaultTimeout               = defaults.HTTPClientTimeout
	HttpReaderDefaultKeepAlive             = defaults.HTTPKeepAlive
	HttpReaderDefaultConnectTimeout        = defaults.HTTPConnectTimeout
	HttpReaderDefaultTLSHandshakeTimeout   = defaults.HTTPTLSHandshakeTimeout
	HttpReaderDefaultResponseHeaderTimeout = defaults.HTTPResponseHeaderTimeout
	HttpReaderDefaultIdleConnTimeout       = defaults.HTTPIdleConnTimeout
)

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches record data over HTTP with configurable options.
type HttpReader struct {
	UserAgent           string
	TotalTimeout        time.Duration
	ConnectTimeout      time.Duration
	TLSHandshakeTimeout time.Duration
	InsecureSkipVerify  bool
	Client              *http.Client
}

// WithUserAgent sets the User-Agent header on outbound requests.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the total request timeout.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.TotalTimeout = timeout
	}
}

// WithConnectTimeout sets the connection establishment timeout.
func WithConnectTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.ConnectTimeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Intended for testing against self-signed endpoints only.
func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithClient supplies a caller-owned *http.Client, overriding the
// transport built from the other options.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates an HttpReader with default transport timeouts,
// adjusted by any provided options.
func NewHttpReader(opts ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:           HttpReaderUserAgent,
		TotalTimeout:        HttpReaderDefaultTimeout,
		ConnectTimeout:      HttpReaderDefaultConnectTimeout,
		TLSHandshakeTimeout: HttpReaderDefaultTLSHandshakeTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.Client == nil {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   r.ConnectTimeout,
				KeepAlive: HttpReaderDefaultKeepAlive,
			}).DialContext,
			TLSHandshakeTimeout:   r.TLSHandshakeTimeout,
			ResponseHeaderTimeout: HttpReaderDefaultResponseHeaderTimeout,
			IdleConnTimeout:       HttpReaderDefaultIdleConnTimeout,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: r.InsecureSkipVerify, //nolint:gosec // opt-in via WithInsecureSkipVerify
				MinVersion:         tls.VersionTLS12,
			},
		}
		r.Client = &http.Client{
			Timeout:   r.TotalTimeout,
			Transport: transport,
		}
	}

	return r
}

// Fetch retrieves the content at url. Non-2xx responses and bodies larger
// than the record size cap are errors.
func (r *HttpReader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", r.UserAgent)

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d fetching %q", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, httpReaderMaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %q: %w", url, err)
	}
	if len(data) > httpReaderMaxBytes {
		return nil, fmt.Errorf("response from %q exceeds %d bytes", url, httpReaderMaxBytes)
	}

	return data, nil
}
