package service

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"

	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/guttosm/cart-sync/internal/service/cache"
)

const (
	defaultCacheShards = 16
	cacheSweepInterval = time.Minute
)

// EvictFunc is told about entries that left the cache on their own
// (expiry or capacity), never about Invalidate or Clear.
type EvictFunc[V any] func(key string, value V, reason string)

// ShardedCache spreads string keys over independent LRU shards with a sliding TTL.
type ShardedCache[V any] struct {
	shards []*ttlCache[V]
	mask   uint32
}

// NewShardedCache splits capacity evenly over numShards (rounded up to a
// power of two, at least one slot each). onEvict may be nil.
func NewShardedCache[V any](capacity int, ttl time.Duration, numShards int, onEvict EvictFunc[V]) *ShardedCache[V] {
	if numShards <= 0 {
		numShards = defaultCacheShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}
	perShard := max(capacity/n, 1)

	sc := &ShardedCache[V]{shards: make([]*ttlCache[V], n), mask: uint32(n - 1)}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl, onEvict)
	}
	return sc
}

func (sc *ShardedCache[V]) shard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.mask]
}

func (sc *ShardedCache[V]) Get(key string) (V, bool) { return sc.shard(key).Get(key) }
func (sc *ShardedCache[V]) Set(key string, value V)  { sc.shard(key).Set(key, value) }
func (sc *ShardedCache[V]) Invalidate(key string)    { sc.shard(key).Invalidate(key) }

func (sc *ShardedCache[V]) each(fn func(*ttlCache[V])) {
	for _, s := range sc.shards {
		fn(s)
	}
}

func (sc *ShardedCache[V]) Clear() { sc.each((*ttlCache[V]).Clear) }
func (sc *ShardedCache[V]) Stop()  { sc.each((*ttlCache[V]).Stop) }

// Len counts held entries, including expired ones not yet swept.
func (sc *ShardedCache[V]) Len() int {
	n := 0
	sc.each(func(s *ttlCache[V]) { n += s.Len() })
	return n
}

func (sc *ShardedCache[V]) Metrics() cache.Metrics {
	var total cache.Metrics
	sc.each(func(s *ttlCache[V]) {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	})
	return total
}

type cacheItem[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

type eviction[V any] struct {
	item   *cacheItem[V]
	reason string
}

// ttlCache is one shard. The list front is the most recently used item.
type ttlCache[V any] struct {
	capacity int
	ttl      time.Duration
	onEvict  EvictFunc[V]
	now      func() time.Time

	mu    sync.Mutex
	order *list.List
	index map[string]*list.Element
	stats cache.Metrics

	stop     chan struct{}
	stopOnce sync.Once
}

func newTTLCache[V any](capacity int, ttl time.Duration, onEvict EvictFunc[V]) *ttlCache[V] {
	c := &ttlCache[V]{
		capacity: capacity,
		ttl:      ttl,
		onEvict:  onEvict,
		now:      time.Now,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
		stop:     make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// notify runs outside the lock so callbacks may call back into the cache.
func (c *ttlCache[V]) notify(evicted []eviction[V]) {
	for _, e := range evicted {
		metrics.RecordSessionCacheOperation("evict", e.reason)
		if c.onEvict != nil {
			c.onEvict(e.item.key, e.item.value, e.reason)
		}
	}
}

func (c *ttlCache[V]) drop(el *list.Element) *cacheItem[V] {
	item := c.order.Remove(el).(*cacheItem[V])
	delete(c.index, item.key)
	return item
}

// Get returns a live value and pushes its expiry forward.
func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	el, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		c.mu.Unlock()
		metrics.RecordSessionCacheOperation("get", "miss")
		return zero, false
	}

	item := el.Value.(*cacheItem[V])
	now := c.now()
	if now.After(item.expiresAt) {
		c.drop(el)
		c.stats.Misses++
		c.mu.Unlock()
		c.notify([]eviction[V]{{item: item, reason: "expired"}})
		return zero, false
	}

	item.expiresAt = now.Add(c.ttl)
	c.order.MoveToFront(el)
	c.stats.Hits++
	c.mu.Unlock()

	metrics.RecordSessionCacheOperation("get", "hit")
	return item.value, true
}

// Set inserts or replaces a value; a full shard drops its least recently used item.
func (c *ttlCache[V]) Set(key string, value V) {
	var evicted []eviction[V]

	c.mu.Lock()
	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		item := el.Value.(*cacheItem[V])
		item.value = value
		item.expiresAt = expiresAt
		c.order.MoveToFront(el)
	} else {
		c.index[key] = c.order.PushFront(&cacheItem[V]{key: key, value: value, expiresAt: expiresAt})
		for c.order.Len() > c.capacity {
			evicted = append(evicted, eviction[V]{item: c.drop(c.order.Back()), reason: "capacity"})
			c.stats.Evictions++
		}
	}
	c.mu.Unlock()

	metrics.RecordSessionCacheOperation("set", "success")
	c.notify(evicted)
}

func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.drop(el)
		metrics.RecordSessionCacheOperation("invalidate", "success")
	}
}

// Clear drops every item and zeroes the counters.
func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.index = make(map[string]*list.Element, c.capacity)
	c.stats = cache.Metrics{}
	metrics.RecordSessionCacheOperation("clear", "success")
}

func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *ttlCache[V]) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.stats
	m.Size = c.order.Len()
	m.Capacity = c.capacity
	return m
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ttlCache[V]) sweepLoop() {
	ticker := time.NewTicker(cacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep drops expired items. Every touch moves an item to the front with a
// fresh expiry, so the back of the list always expires first.
func (c *ttlCache[V]) sweep() {
	var evicted []eviction[V]

	c.mu.Lock()
	now := c.now()
	for el := c.order.Back(); el != nil; el = c.order.Back() {
		if !now.After(el.Value.(*cacheItem[V]).expiresAt) {
			break
		}
		evicted = append(evicted, eviction[V]{item: c.drop(el), reason: "expired"})
	}
	c.mu.Unlock()

	c.notify(evicted)
}

var (
	_ cache.CacheWithMetrics[*Session] = (*ShardedCache[*Session])(nil)
	_ cache.CacheWithMetrics[*Session] = (*ttlCache[*Session])(nil)
)
