// Package service contains the business logic for the pressure drop service.
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/service/cache"
)

const cleanupInterval = time.Minute

// ShardedCache spreads calculation results over independently locked shards.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint64
}

// NewShardedCache creates a sharded cache with the given total capacity and TTL.
// numShards is rounded up to a power of two.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{shards: shards, shardMask: uint64(n - 1)}
}

func (sc *ShardedCache) shard(key cache.Key) *ttlCache {
	return sc.shards[key.Hash()&sc.shardMask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(key cache.Key) (model.PipelineResult, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(key cache.Key, value model.PipelineResult) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key cache.Key) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns metrics summed over all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after a TTL.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[cache.Key]*list.Element
	order    *list.List // front is most recently used
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       cache.Key
	value     model.PipelineResult
	expiresAt time.Time
}

// newTTLCache creates a cache and starts its background cleanup.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[cache.Key]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns a cached result if it exists and has not expired.
func (c *ttlCache) Get(key cache.Key) (model.PipelineResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.PipelineResult{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.PipelineResult{}, false
	}

	c.order.MoveToFront(el)
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or replaces a value, evicting the least recently used entry when full.
func (c *ttlCache) Set(key cache.Key, value model.PipelineResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			c.evictions.Add(1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a specific key.
func (c *ttlCache) Invalidate(key cache.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[cache.Key]*list.Element, c.capacity)
	c.order.Init()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)

	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the background cleanup. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) startCleanup() {
	ticker := time.NewTicker(cleanupInterval)
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

// cleanup drops every expired entry.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

func (c *ttlCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}
