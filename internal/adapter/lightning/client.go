// Package lightning talks to the wallet backend that issues, checks and
// pays invoices, and to the swap service used for on-chain payouts.
package lightning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lnpos-gateway/internal/core/ports"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// api is the JSON-over-HTTP plumbing shared by Client and SwapClient.
type api struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

func newAPI(baseURL, apiKey string, httpClient HTTPClient) api {
	return api{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, httpClient: httpClient}
}

// do sends in as JSON and decodes the response into out. 4xx answers map to
// ports.ErrInvoiceRejected; everything else that fails maps to
// ports.ErrUpstreamUnavailable.
func (a api) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.apiKey != "" {
		req.Header.Set("X-Api-Key", a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ports.ErrUpstreamUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %v", ports.ErrUpstreamUnavailable, path, err)
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s %s status %d: %s", ports.ErrInvoiceRejected, method, path, resp.StatusCode, detail(raw))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s status %d", ports.ErrUpstreamUnavailable, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ports.ErrUpstreamUnavailable, path, err)
	}
	return nil
}

// detail pulls the backend's error message out of a 4xx body.
func detail(raw []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Detail != "" {
		return e.Detail
	}
	if len(raw) > 200 {
		raw = raw[:200]
	}
	return string(raw)
}
