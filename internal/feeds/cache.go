package feeds

import (
	"log/slog"
	"sync"
	"time"

	"photofeed/internal/core/posts"
)

// feedCache holds the single cache slot per repository: one ordered
// post sequence and the time it was fetched. There is no per-query
// caching.
type feedCache struct {
	mu        sync.RWMutex
	entries   []*posts.Post
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func newFeedCache(ttl time.Duration, logger *slog.Logger) *feedCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedCache{
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// get returns the cached sequence when the record exists and is younger
// than the TTL. Callers receive fresh copies: handlers write counters
// onto posts in place, and concurrent requests must never share a
// mutable struct.
func (c *feedCache) get() ([]*posts.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entries == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return clonePosts(c.entries), true
}

// set replaces the cache record with a private copy of the sequence
func (c *feedCache) set(entries []*posts.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = clonePosts(entries)
	c.fetchedAt = c.now()

	c.logger.Debug("feed cache updated",
		"post_count", len(entries),
		"expires_at", c.fetchedAt.Add(c.ttl))
}

// invalidate destroys the cache record unconditionally
func (c *feedCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.fetchedAt = time.Time{}

	c.logger.Debug("feed cache invalidated")
}

func clonePosts(entries []*posts.Post) []*posts.Post {
	out := make([]*posts.Post, len(entries))
	for i, p := range entries {
		clone := *p
		out[i] = &clone
	}
	return out
}
