package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/metrics"
)

const limiterShards = 16

// KeyFunc names the bucket a request is counted against.
type KeyFunc func(c *gin.Context) string

// ClientIPKey counts requests per client address.
func ClientIPKey(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// SessionKeyOrIP counts requests per cart session. It must run after
// SessionAuth; requests without a session are counted per client address.
func SessionKeyOrIP(c *gin.Context) string {
	if id := GetSessionID(c); id != "" {
		return "session:" + id
	}
	return ClientIPKey(c)
}

// window is a fixed counting window for one key.
type window struct {
	start time.Time
	used  int
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiter allows rate requests per key in each fixed window. Keys are
// spread over shards so concurrent sessions rarely share a lock.
type RateLimiter struct {
	rate   int
	period time.Duration
	shards [limiterShards]limiterShard
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter and its sweeper. Call Stop to end the sweeper.
func NewRateLimiter(rate int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i].windows = make(map[string]*window)
	}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &rl.shards[h.Sum32()%limiterShards]
}

// Allow counts one request against key. It reports whether the request
// fits in the current window, how many remain and when the window resets.
func (rl *RateLimiter) Allow(key string) (bool, int, time.Duration) {
	now := rl.now()
	s := rl.shard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		s.windows[key] = w
	}
	reset := rl.period - now.Sub(w.start)
	if w.used >= rl.rate {
		return false, 0, reset
	}
	w.used++
	return true, rl.rate - w.used, reset
}

// Limit returns a middleware counting requests under key. scope labels the
// rejection metric.
func (rl *RateLimiter) Limit(scope string, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.Allow(key(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if allowed {
			c.Next()
			return
		}

		metrics.RecordRateLimited(scope)
		retry := int(reset.Round(time.Second) / time.Second)
		if retry < 1 {
			retry = 1
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

func (rl *RateLimiter) sweep() {
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

// evictExpired drops windows that ended more than one period ago.
func (rl *RateLimiter) evictExpired() {
	now := rl.now()
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for key, w := range s.windows {
			if now.Sub(w.start) >= 2*rl.period {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// Tracked returns the number of keys currently held.
func (rl *RateLimiter) Tracked() int {
	n := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		n += len(s.windows)
		s.mu.Unlock()
	}
	return n
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
