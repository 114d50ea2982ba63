// Package http provides an HTTP implementation of tourcopy.Fetcher for
// pulling product exports from the content authoring tool.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/tourcopy"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBytes caps the size of a fetched export.
const DefaultMaxBytes = 32 << 20

// Ensure Fetcher implements tourcopy.Fetcher at compile time.
var _ tourcopy.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves export documents using plain HTTP GET requests.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	delays   []time.Duration
	limiter  *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the largest response body accepted.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithRetryDelays sets the waits between attempts. Requests are retried
// once per delay; nil disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithRateLimit limits requests to rps per host. A non-positive rps
// disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = newHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at url, retrying transient failures. A 404
// response is reported as ENOTFOUND. Other client errors except 429 and
// oversized bodies are EINVALID and not retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return withRetry(ctx, f.delays, func() ([]byte, error) {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, url); err != nil {
				return nil, err
			}
		}
		return f.fetch(ctx, url)
	})
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "invalid url %q: %v", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, tourcopy.Errorf(tourcopy.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return nil, tourcopy.Errorf(tourcopy.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, tourcopy.Errorf(tourcopy.EINVALID, "response from %s exceeds %d bytes", url, f.maxBytes)
	}

	return body, nil
}
