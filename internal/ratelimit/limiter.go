// Package ratelimit keeps one token bucket per client.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// minIdle is the shortest time a client must be quiet before its bucket
// is dropped; sweeps run at most this often.
const minIdle = time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages rate limits for multiple clients. A client idle long
// enough for its bucket to refill completely is forgotten, since a fresh
// bucket would behave the same.
type Limiter struct {
	buckets   map[string]*bucket
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	perHour   int
	idleAfter time.Duration
	lastSweep time.Time

	now func() time.Time
}

// NewLimiter creates a new rate limiter
// requestsPerHour: sustained requests allowed per hour per client
// burst: max requests in a burst
// A non-positive requestsPerHour disables limiting.
func NewLimiter(requestsPerHour int, burst int) *Limiter {
	r := rate.Inf
	if requestsPerHour > 0 {
		r = rate.Limit(float64(requestsPerHour) / 3600.0)
	}
	if burst < 1 {
		burst = 1
	}

	idleAfter := minIdle
	if requestsPerHour > 0 {
		refill := time.Duration(burst) * time.Hour / time.Duration(requestsPerHour)
		idleAfter = max(idleAfter, refill)
	}

	return &Limiter{
		buckets:   make(map[string]*bucket),
		rate:      r,
		burst:     burst,
		perHour:   requestsPerHour,
		idleAfter: idleAfter,
		now:       time.Now,
	}
}

// PerHour returns the configured sustained rate.
func (l *Limiter) PerHour() int {
	return l.perHour
}

// GetLimiter returns the bucket for a client, creating it on first use
func (l *Limiter) GetLimiter(key string) *rate.Limiter {
	return l.touch(key, l.now())
}

func (l *Limiter) touch(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, exists := l.buckets[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter
}

// sweep drops idle buckets. Callers hold mu.
func (l *Limiter) sweep(now time.Time) {
	if l.lastSweep.IsZero() {
		l.lastSweep = now
		return
	}
	if now.Sub(l.lastSweep) < minIdle {
		return
	}
	l.lastSweep = now

	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleAfter {
			delete(l.buckets, key)
		}
	}
}

// Allow reports whether a request from key may proceed and consumes a token
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	return l.touch(key, now).AllowN(now, 1)
}

// Tokens returns the tokens left for key
func (l *Limiter) Tokens(key string) float64 {
	now := l.now()
	return l.touch(key, now).TokensAt(now)
}

// Len returns the number of tracked clients
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
