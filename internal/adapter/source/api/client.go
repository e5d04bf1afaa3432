// Package api implements a SailingSource backed by the upstream sailings HTTP API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

// SourceName is the unique identifier for the upstream API source.
const SourceName = "sailings_api"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "sailing-listing/1.0"

// DefaultTimeout bounds a single request when the caller sets no deadline.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps the response body read from the upstream.
const maxBodyBytes = 10 << 20

// Client fetches sailings from the upstream API with a single GET.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new Client for the given endpoint URL.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:       url,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the unique identifier for this source.
func (c *Client) Name() string {
	return SourceName
}

// Fetch retrieves the sailings listed under "results".
// Non-success statuses wrap domain.ErrSourceUnavailable and undecodable
// bodies wrap domain.ErrInvalidPayload, both inside a *domain.SourceError.
func (c *Client) Fetch(ctx context.Context) ([]domain.Sailing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("fetch sailings: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, domain.NewSourceError(SourceName,
			fmt.Errorf("%w: unexpected status code %d", domain.ErrSourceUnavailable, resp.StatusCode))
	}

	var payload domain.SailingsPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err))
	}

	if payload.Results == nil {
		return []domain.Sailing{}, nil
	}
	return payload.Results, nil
}

// Ensure Client implements SailingSource at compile time.
var _ domain.SailingSource = (*Client)(nil)
