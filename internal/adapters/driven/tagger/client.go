package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/logger"
)

const (
	// DefaultTimeout is the request timeout of a tagger client.
	DefaultTimeout = 30 * time.Second

	// DefaultAttempts bounds how often a rate-limited request is sent.
	DefaultAttempts = 3
)

var errRateLimited = errors.New("too many requests")

// Client sends JSON requests to a tagger service.
type Client struct {
	name     string
	baseURL  string
	http     *http.Client
	limiter  *RateLimiter
	attempts int
}

// NewClient creates a client for the service at baseURL.
// Name prefixes every error.
func NewClient(name, baseURL string, requestsPerSecond float64) *Client {
	return &Client{
		name:     name,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: DefaultTimeout},
		limiter:  NewRateLimiter(requestsPerSecond),
		attempts: DefaultAttempts,
	}
}

// BaseURL returns the service endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostJSON sends in to path and decodes the response into out.
// A 429 response is retried after the backoff it sets, up to the client's
// attempt limit. Transport failures and 429/5xx responses wrap
// domain.ErrTaggerUnavailable.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", c.name, err)
	}

	attempts := max(c.attempts, 1)
	for attempt := 1; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: wait for rate limit: %w", c.name, err)
		}

		err = c.post(ctx, path, body, out)
		if !errors.Is(err, errRateLimited) || attempt >= attempts {
			return err
		}
		logger.Debug("%s rate limited, retrying (attempt %d of %d)", c.name, attempt+1, attempts)
	}
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: send request: %w: %w", c.name, domain.ErrTaggerUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

// Ping validates the service is reachable through its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: create ping request: %w", c.name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: ping failed: %w: %w", c.name, domain.ErrTaggerUnavailable, err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	msg, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		msg = []byte("failed to read body")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.limiter.RecordRateLimitError(retryAfter(resp.Header.Get("Retry-After")))
		return fmt.Errorf("%s: %w: %w", c.name, domain.ErrTaggerUnavailable, errRateLimited)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s error (status %d): %s: %w",
			c.name, resp.StatusCode, strings.TrimSpace(string(msg)), domain.ErrTaggerUnavailable)
	default:
		return fmt.Errorf("%s error (status %d): %s", c.name, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
