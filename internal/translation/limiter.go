package translation

import (
	"errors"
	"sync"
	"time"
)

const (
	rateLimitMaxRequests = 10
	rateLimitWindow      = 60 * time.Second
)

var ErrRateLimited = errors.New("too many gloss requests, try again in a minute")

// RateLimiter allows at most rateLimitMaxRequests model calls in any
// rateLimitWindow.
type RateLimiter struct {
	mu       sync.Mutex
	requests []time.Time
	now      func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{now: time.Now}
}

func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-rateLimitWindow)

	pruned := r.requests[:0]
	for _, t := range r.requests {
		if t.After(cutoff) {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) >= rateLimitMaxRequests {
		r.requests = pruned
		return false
	}

	r.requests = append(pruned, now)
	return true
}
