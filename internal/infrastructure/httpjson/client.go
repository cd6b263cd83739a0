// Package httpjson issues GET requests and decodes JSON bodies, reporting
// every failure as a *ports.FetchError.
package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ersonp/nearby/internal/domain/ports"
	"github.com/ersonp/nearby/internal/infrastructure/config"
)

// maxDrain bounds how much of an error body is read before closing.
const maxDrain = 64 << 10

// Client performs JSON GET requests against a single base URL.
type Client struct {
	base      *url.URL
	http      *http.Client
	userAgent string
	accept    string
}

// New creates a client for baseURL. The timeout from cfg applies to every
// request; zero means none.
func New(baseURL, accept string, cfg config.HTTPConfig) (*Client, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return &Client{
		base:      base,
		http:      &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		accept:    accept,
	}, nil
}

// ParseBaseURL validates an absolute http(s) base URL and strips any trailing slash.
func ParseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// URL builds the request URL for path and query relative to the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = query.Encode()
	return u.String()
}

// GetJSON fetches path with query and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, query), nil)
	if err != nil {
		return &ports.FetchError{Message: "building request", Err: err}
	}
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.FetchError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
		return ports.StatusError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ports.FetchError{Status: resp.StatusCode, Message: "decoding response", Err: err}
	}

	return nil
}
