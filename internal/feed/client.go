package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"stash-indexer/config"
)

// ErrMissingCursor is returned when a feed response carries no next cursor.
var ErrMissingCursor = errors.New("feed response has no next cursor")

// Client fetches one page of the change feed starting at cursor.
type Client interface {
	Fetch(ctx context.Context, cursor string) (*Batch, error)
}

// HTTPClient is the Client for the public HTTP change feed.
type HTTPClient struct {
	url         string
	cursorParam string
	userAgent   string
	client      *http.Client
}

// NewHTTPClient builds an HTTPClient from the feed configuration.
func NewHTTPClient(cfg *config.FeedConfig, logger *zap.Logger) *HTTPClient {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			logger.Warn("invalid proxy URL, feed client will not use a proxy",
				zap.String("proxy", cfg.HTTPProxy), zap.Error(err))
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &HTTPClient{
		url:         cfg.URL,
		cursorParam: cfg.CursorParam,
		userAgent:   cfg.UserAgent,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
	}
}

// Fetch performs a single GET against the feed.
func (c *HTTPClient) Fetch(ctx context.Context, cursor string) (*Batch, error) {
	reqURL, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	if cursor != "" {
		q := reqURL.Query()
		q.Set(c.cursorParam, cursor)
		reqURL.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return decodeBatch(body)
}

func decodeBatch(body []byte) (*Batch, error) {
	var apiResp Response
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed response: %w", err)
	}

	next, ok := apiResp.Cursor()
	if !ok {
		return nil, ErrMissingCursor
	}

	return &Batch{Stashes: apiResp.Stashes, NextCursor: next}, nil
}

// Timeout reports whether err came from an expired request deadline.
func Timeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded)
}
