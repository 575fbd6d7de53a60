package middleware

import (
	"container/list"
	"net/http"
	"sync"
	"time"
)

const (
	defaultIdempotencyEntries = 10000
	idempotencySweepInterval  = time.Minute
)

// storedResponse is a response kept for replay.
type storedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

type storedEntry struct {
	key       string
	resp      *storedResponse
	expiresAt time.Time
}

// idempotencyCache keeps responses for a fixed TTL in insertion order, so
// the oldest entry is always the first to expire and the first to go when full.
type idempotencyCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu    sync.Mutex
	order *list.List
	index map[string]*list.Element

	stop     chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration, maxEntries int) *idempotencyCache {
	if maxEntries <= 0 {
		maxEntries = defaultIdempotencyEntries
	}
	c := &idempotencyCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		order:      list.New(),
		index:      make(map[string]*list.Element),
		stop:       make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

func (c *idempotencyCache) Get(key string) (*storedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*storedEntry)
	if c.now().After(entry.expiresAt) {
		c.remove(el)
		return nil, false
	}
	return entry.resp, true
}

// Set stores resp with a fresh TTL. A full cache drops its oldest entry.
func (c *idempotencyCache) Set(key string, resp *storedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.remove(el)
	}
	c.index[key] = c.order.PushBack(&storedEntry{key: key, resp: resp, expiresAt: c.now().Add(c.ttl)})
	for c.order.Len() > c.maxEntries {
		c.remove(c.order.Front())
	}
}

func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *idempotencyCache) remove(el *list.Element) {
	delete(c.index, c.order.Remove(el).(*storedEntry).key)
}

func (c *idempotencyCache) sweepLoop() {
	ticker := time.NewTicker(idempotencySweepInterval)
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

func (c *idempotencyCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Front(); el != nil && now.After(el.Value.(*storedEntry).expiresAt); el = c.order.Front() {
		c.remove(el)
	}
}
