package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/i18n"
)

const defaultNumShards = 16

type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by identifier hash to spread lock contention.
type RateLimiter struct {
	shards   []*rateLimiterShard
	rate     int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per window per identifier and starts the cleanup loop.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow takes one token for identifier.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	v, ok := s.visitors[identifier]
	if !ok || now.Sub(v.lastReset) > rl.window {
		s.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}
	if v.tokens <= 0 {
		return false, 0
	}
	v.tokens--
	return true, v.tokens
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string { return "ip:" + c.ClientIP() })
}

// SessionRateLimit limits requests per storefront session, falling back to the client IP
// for requests without one.
func (rl *RateLimiter) SessionRateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		if id := GetSessionID(c); id != "" {
			return "session:" + id
		}
		return "ip:" + c.ClientIP()
	})
}

func (rl *RateLimiter) limit(identify func(*gin.Context) string) gin.HandlerFunc {
	limitHeader := strconv.Itoa(rl.rate)
	retryAfter := strconv.Itoa(int(rl.window.Round(time.Second) / time.Second))

	return func(c *gin.Context) {
		allowed, remaining := rl.allow(identify(c))

		c.Header("X-RateLimit-Limit", limitHeader)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, i18n.Translate(c, i18n.ErrKeyRateLimitExceeded)).
					WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	threshold := rl.window * 2
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Visitors returns the number of tracked identifiers.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.visitors)
		s.mu.Unlock()
	}
	return total
}
