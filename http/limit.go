package http

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/tourcopy"
	"golang.org/x/time/rate"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// hostLimiter provides per-host rate limiting using token buckets.
type hostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

func newHostLimiter(rps float64) *hostLimiter {
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to the host of rawURL is allowed.
func (h *hostLimiter) Wait(ctx context.Context, rawURL string) error {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}

	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}

// retryable reports whether a failed fetch may succeed on another attempt.
func retryable(err error) bool {
	switch tourcopy.ErrorCode(err) {
	case tourcopy.ENOTFOUND, tourcopy.EINVALID:
		return false
	}
	return true
}

// withRetry calls fetch until it succeeds, fails permanently, or runs out
// of delays.
func withRetry(ctx context.Context, delays []time.Duration, fetch func() ([]byte, error)) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		body, err := fetch()
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt == len(delays) || !retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return nil, lastErr
}
