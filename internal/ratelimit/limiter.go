// Package ratelimit implements a per-client sliding-window request limiter.
package ratelimit

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Limiter admits at most Limit requests per key within any Window. The
// request timestamps of each key live in a bounded cache whose entries
// expire one window after the key's last request, so idle clients are
// forgotten.
type Limiter struct {
	mu     sync.Mutex
	hits   *ristretto.Cache[string, []time.Time]
	limit  int
	window time.Duration
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock sets the clock used to stamp requests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter admitting limit requests per window and key.
func New(limit int, window time.Duration, opts ...Option) (*Limiter, error) {
	if limit < 1 {
		return nil, fmt.Errorf("rate limit must be at least 1, got %d", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", window)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []time.Time]{
		NumCounters: 1e5,     // keys to track frequency of
		MaxCost:     1 << 20, // total timestamps kept across all keys
		BufferItems: 64,
		// Cost counts timestamps only.
		IgnoreInternalCost: true,
		Cost: func(v []time.Time) int64 {
			return int64(len(v)) + 1
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create rate limit cache: %w", err)
	}

	l := &Limiter{
		hits:   cache,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Limit returns the number of requests admitted per window.
func (l *Limiter) Limit() int { return l.limit }

// Window returns the sliding window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Allow records a request for key and reports whether it is admitted. When
// it is not, retryAfter is the time until the oldest request in the window
// slides out.
func (l *Limiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	stamps, _ := l.hits.Get(key)
	live := slices.DeleteFunc(slices.Clone(stamps), func(t time.Time) bool {
		return !t.After(cutoff)
	})

	if len(live) >= l.limit {
		l.store(key, live)
		return false, live[0].Sub(cutoff)
	}

	live = append(live, now)
	l.store(key, live)
	return true, 0
}

// Remaining returns how many more requests key may make in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	stamps, _ := l.hits.Get(key)
	n := 0
	for _, t := range stamps {
		if t.After(cutoff) {
			n++
		}
	}
	return max(l.limit-n, 0)
}

// Reset forgets every request of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hits.Del(key)
	l.hits.Wait()
}

// Close releases the cache.
func (l *Limiter) Close() {
	l.hits.Close()
}

func (l *Limiter) store(key string, stamps []time.Time) {
	l.hits.SetWithTTL(key, stamps, 0, l.window)
	// Sets are buffered; wait so the next Allow sees this one.
	l.hits.Wait()
}
