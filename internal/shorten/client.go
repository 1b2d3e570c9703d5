// Package shorten turns long reorder URLs into compact ones via the v.gd
// simple API, with an optional SQLite cache so repeated runs stay offline.
package shorten

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"binlabel/internal/logging"
)

const (
	apiBaseURL     = "https://v.gd/create.php?format=simple&url="
	requestTimeout = 5 * time.Second
	maxAttempts    = 3
	retryDelay     = 500 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
)

type Client struct {
	http   *http.Client
	cache  *Cache
	logger *logging.Logger
}

// New builds a shortener client. cache may be nil to disable caching; a nil
// httpClient gets a default with the API timeout applied.
func New(httpClient *http.Client, cache *Cache, logger *logging.Logger) *Client {
	if logger == nil {
		panic("shorten.New: logger must not be nil")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{http: httpClient, cache: cache, logger: logger}
}

// IsURL reports whether s is an absolute web URL the shortener accepts.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// StripScheme removes a leading http(s) scheme for more compact QR payloads.
func StripScheme(s string) string {
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimPrefix(s, "https://")
}

// Shorten returns a compact form of rawURL. Non-web content passes through
// unchanged. Results come from the cache when available, otherwise from the
// API with the scheme stripped. On failure the original URL is returned and
// a warning logged; no label is ever lost to a shortener outage.
func (c *Client) Shorten(ctx context.Context, rawURL string) string {
	if !IsURL(rawURL) {
		return rawURL
	}

	if short, ok, err := c.cache.Get(ctx, rawURL); err != nil {
		c.logger.Warn("short url cache read failed", logging.Field("error", err))
	} else if ok {
		c.logger.Debug("short url cache hit",
			logging.Field("url", rawURL),
			logging.Field("short", short))
		return short
	}

	short, err := c.request(ctx, rawURL)
	if err != nil {
		if IsRejected(err) {
			c.logger.Warn("shortener rejected url",
				logging.Field("url", rawURL),
				logging.Field("error", err))
		} else {
			c.logger.Warn("url shortening failed",
				logging.Field("url", rawURL),
				logging.Field("error", err))
		}
		return rawURL
	}

	if err := c.cache.Put(ctx, rawURL, short); err != nil {
		c.logger.Warn("short url cache write failed", logging.Field("error", err))
	}
	c.logger.Verbose("shortened url",
		logging.Field("url", rawURL),
		logging.Field("short", short))
	return short
}

func (c *Client) request(ctx context.Context, rawURL string) (string, error) {
	endpoint := apiBaseURL + url.QueryEscape(rawURL)

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = retryDelay
	retry.MaxInterval = retryMaxDelay
	retry.Reset()

	return backoff.Retry(ctx, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
		if err != nil {
			return "", backoff.Permanent(err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		c.logger.Debugf("GET %s -> %s", endpoint, resp.Status)

		if resp.StatusCode >= 400 {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			c.logger.Debug("shortener error response",
				logging.Field("status", resp.Status),
				logging.Field("response", logging.Truncate(string(data))),
			)
			statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
			if !retryableStatus(resp.StatusCode) {
				return "", backoff.Permanent(statusErr)
			}
			return "", statusErr
		}

		payload, err := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if err != nil {
			return "", err
		}
		short := strings.TrimSpace(string(payload))
		if short == "" {
			return "", errors.New("empty shortener response")
		}
		return StripScheme(short), nil
	},
		backoff.WithBackOff(retry),
		backoff.WithMaxTries(maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Debug("retrying url shortening",
				logging.Field("error", err),
				logging.Field("next_retry", next.String()))
		}),
	)
}

// 429 and server-side failures are worth retrying; any other 4xx means v.gd
// refused the URL itself.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
