// Package fetch is the HTTP collaborator for URL builds: a single
// buffered GET per call, no retries.
package fetch

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/adamwojs/data-uri/pkg/config"
	"github.com/adamwojs/data-uri/pkg/logger"
)

// Client wraps a resty client configured from Config.
type Client struct {
	rc *resty.Client
}

// NewClient builds a Client with the configured timeout and user agent.
// Retries stay disabled; a failed attempt is reported, not repeated.
func NewClient(cfg *config.Config) *Client {
	rc := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)
	return &Client{rc: rc}
}

// Get fetches url, buffering the full response. Returns the status code,
// body bytes and the declared Content-Type header.
func (c *Client) Get(url string) (int, []byte, string, error) {
	logger.DebugCF("fetch", "GET", map[string]interface{}{"url": url})
	resp, err := c.rc.R().Get(url)
	if err != nil {
		return 0, nil, "", fmt.Errorf("get %s: %w", url, err)
	}
	logger.DebugCF("fetch", "response", map[string]interface{}{
		"url":    url,
		"status": resp.StatusCode(),
		"bytes":  len(resp.Body()),
	})
	return resp.StatusCode(), resp.Body(), resp.Header().Get("Content-Type"), nil
}
