// Package dedup suppresses identical actions repeated within a short
// window by replaying the previously recorded result.
package dedup

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Defaults used when Options leaves a field zero
const (
	DefaultWindow  = 5 * time.Second
	DefaultMaxSize = 1000
)

// Entry is one cached action outcome
type Entry struct {
	Result    any
	Timestamp time.Time
	Duration  time.Duration
}

// Stats is a snapshot of the cache
type Stats struct {
	Size    int           `json:"size"`
	MaxSize int           `json:"maxSize"`
	Window  time.Duration `json:"window"`
}

// Options configures a Cache
type Options struct {
	Window  time.Duration
	MaxSize int
	// PerSession scopes keys to the issuing session instead of sharing
	// them across every session.
	PerSession bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Cache is a bounded, insertion-ordered result cache guarded by one mutex.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	order   []string

	window     time.Duration
	maxSize    int
	perSession bool
	now        func() time.Time
}

// New creates a Cache
func New(opts Options) *Cache {
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		entries:    make(map[string]Entry),
		window:     opts.Window,
		maxSize:    opts.MaxSize,
		perSession: opts.PerSession,
		now:        opts.Now,
	}
}

// Key serializes an action invocation. Map keys are sorted by
// encoding/json, so equal params always produce equal keys. When the cache
// is session scoped the session id is prepended.
func (c *Cache) Key(sessionID, action string, params map[string]any) string {
	if params == nil {
		params = map[string]any{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		// unmarshalable params never collide with anything
		raw = []byte(err.Error())
	}

	key := action + ":" + string(raw)
	if c.perSession {
		key = sessionID + "|" + key
	}
	return key
}

// ShouldExecute reports whether the action must run, i.e. there is no
// entry for key recorded within the window.
func (c *Cache) ShouldExecute(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return true
	}
	return c.now().Sub(e.Timestamp) > c.window
}

// CachedResult returns the result recorded for key if it is still fresh.
func (c *Cache) CachedResult(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.Timestamp) > c.window {
		return nil, false
	}
	return e.Result, true
}

// Record upserts the result for key and evicts the oldest-inserted keys
// until the cache is back within its size bound.
func (c *Cache) Record(key string, result any, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = Entry{Result: result, Timestamp: c.now(), Duration: duration}

	for len(c.entries) > c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// CleanExpired removes every entry older than the window and returns how
// many were dropped.
func (c *Cache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.order[:0]
	removed := 0
	for _, key := range c.order {
		if now.Sub(c.entries[key].Timestamp) > c.window {
			delete(c.entries, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
	return removed
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.order = nil
	c.mu.Unlock()
}

// Stats returns the current size and limits.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), MaxSize: c.maxSize, Window: c.window}
}

// RunJanitor sweeps expired entries every interval until ctx is done.
func (c *Cache) RunJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.CleanExpired(); n > 0 && logger != nil {
				logger.Debug("Dedup cache swept", "removed", n, "size", c.Stats().Size)
			}
		}
	}
}
