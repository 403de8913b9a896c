package middleware

import (
	"net/http"
	"sync"
	"time"
)

// cachedResponse stores a response replayed for a repeated Idempotency-Key.
type cachedResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	StoredAt   time.Time
}

// idempotencyCache is a bounded TTL map of cached responses. When full, an
// expired entry is evicted first, otherwise the oldest one.
type idempotencyCache struct {
	mu         sync.Mutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
}

func newIdempotencyCache(ttl time.Duration, maxEntries int) *idempotencyCache {
	c := &idempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.expired(resp) {
		return nil, false
	}
	return resp, true
}

func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.StoredAt = c.now()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOne()
	}
	c.items[key] = resp
}

func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) expired(resp *cachedResponse) bool {
	return c.now().Sub(resp.StoredAt) > c.ttl
}

// evictOne must be called with mu held.
func (c *idempotencyCache) evictOne() {
	var oldestKey string
	var oldest time.Time
	for k, resp := range c.items {
		if c.expired(resp) {
			delete(c.items, k)
			return
		}
		if oldestKey == "" || resp.StoredAt.Before(oldest) {
			oldestKey, oldest = k, resp.StoredAt
		}
	}
	delete(c.items, oldestKey)
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, resp := range c.items {
		if c.expired(resp) {
			delete(c.items, key)
		}
	}
}
