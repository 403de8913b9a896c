package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
)

const defaultNumShards = 16

// window is the request budget of one identifier in the current period.
type window struct {
	remaining int
	resetAt   time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// ShardedRateLimiter is a fixed-window limiter. Identifiers are spread over
// shards by FNV hash so concurrent clients rarely share a lock.
type ShardedRateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	period time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per period.
func NewRateLimiter(rate int, period time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, period, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with numShards shards. It starts a
// goroutine that evicts idle identifiers until Stop is called.
func NewShardedRateLimiter(rate int, period time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &ShardedRateLimiter{
		shards: make([]*rateLimiterShard, numShards),
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{windows: make(map[string]*window)}
	}

	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request from identifier's budget. It returns the budget
// left and when the current window ends.
func (rl *ShardedRateLimiter) take(identifier string) (allowed bool, remaining int, resetAt time.Time) {
	shard := rl.shardFor(identifier)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[identifier]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: rl.rate, resetAt: now.Add(rl.period)}
		shard.windows[identifier] = w
	}
	if w.remaining == 0 {
		return false, 0, w.resetAt
	}
	w.remaining--
	return true, w.remaining, w.resetAt
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// ClientRateLimit limits requests per authenticated client, falling back to
// the IP for anonymous requests. It must run after authentication.
func (rl *ShardedRateLimiter) ClientRateLimit() gin.HandlerFunc {
	return rl.limit(clientIdentifier)
}

func (rl *ShardedRateLimiter) limit(identify func(*gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(rl.rate)

	return func(c *gin.Context) {
		identifier := identify(c)
		allowed, remaining, resetAt := rl.take(identifier)
		wait := strconv.Itoa(int(math.Ceil(resetAt.Sub(rl.now()).Seconds())))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", wait)

		if allowed {
			c.Next()
			return
		}

		scope, _, _ := strings.Cut(identifier, ":")
		metrics.RecordRateLimited(scope)
		c.Header("Retry-After", wait)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

func clientIdentifier(c *gin.Context) string {
	if id := GetClientID(c); id != "" {
		return "client:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops identifiers whose window ended more than one period ago.
func (rl *ShardedRateLimiter) evictExpired() {
	cutoff := rl.now().Add(-rl.period)

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, w := range shard.windows {
			if w.resetAt.Before(cutoff) {
				delete(shard.windows, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the eviction goroutine. It is safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked identifiers, in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.windows)
		shard.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
