// Copyright (c) 2025, The Anitya Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pombredanne/anitya/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code. The
// body is buffered before headers go out, so an encoding failure
// never produces a partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// HTTPReaderUserAgent identifies version-list fetches upstream.
const HTTPReaderUserAgent = "anitya-serializer/1.0"

// maxVersionListBytes caps a fetched version list. Upstream endpoints
// are untrusted input.
const maxVersionListBytes = 8 << 20

// HTTPReaderOption configures an HTTPReader.
type HTTPReaderOption func(*HTTPReader)

// WithUserAgent overrides the request User-Agent header.
func WithUserAgent(ua string) HTTPReaderOption {
	return func(r *HTTPReader) { r.userAgent = ua }
}

// WithTotalTimeout overrides the total request timeout.
func WithTotalTimeout(d time.Duration) HTTPReaderOption {
	return func(r *HTTPReader) { r.client.Timeout = d }
}

// WithClient replaces the underlying HTTP client entirely.
func WithClient(client *http.Client) HTTPReaderOption {
	return func(r *HTTPReader) { r.client = client }
}

// HTTPReader fetches version lists over HTTP with the shared client
// timeouts from pkg/defaults.
type HTTPReader struct {
	userAgent string
	client    *http.Client
}

// NewHTTPReader returns an HTTPReader with pooled connections and the
// default timeouts applied.
func NewHTTPReader(options ...HTTPReaderOption) *HTTPReader {
	r := &HTTPReader{
		userAgent: HTTPReaderUserAgent,
		client: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
			},
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Read fetches url and returns the body, capped at
// maxVersionListBytes.
func (r *HTTPReader) Read(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxVersionListBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body from %s: %w", url, err)
	}
	return body, nil
}

// ReadVersionList fetches url and parses the body as a version list.
func (r *HTTPReader) ReadVersionList(ctx context.Context, url string) ([]string, error) {
	body, err := r.Read(ctx, url)
	if err != nil {
		return nil, err
	}
	return ReadVersionList(body)
}
