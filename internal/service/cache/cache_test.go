//go:build !integration

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheInterface(t *testing.T) {
	var c Cache[string] = &mockCache{}

	value, found := c.Get("a")
	assert.False(t, found)
	assert.Empty(t, value)

	c.Set("a", "b")
	c.Invalidate("a")
	c.Clear()
	c.Stop()
}

func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics[int] = &mockCacheWithMetrics{}

	value, found := c.Get("a")
	assert.False(t, found)
	assert.Zero(t, value)

	c.Set("a", 1)
	assert.Equal(t, Metrics{}, c.Metrics())
	c.Stop()
}

func TestMetricsStructure(t *testing.T) {
	m := Metrics{
		Hits:      10,
		Misses:    5,
		Evictions: 2,
		Size:      8,
		Capacity:  10,
	}

	assert.Equal(t, int64(10), m.Hits)
	assert.Equal(t, int64(5), m.Misses)
	assert.Equal(t, int64(2), m.Evictions)
	assert.Equal(t, 8, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

type mockCache struct{}

func (m *mockCache) Get(string) (string, bool) { return "", false }
func (m *mockCache) Set(string, string)        {}
func (m *mockCache) Invalidate(string)         {}
func (m *mockCache) Clear()                    {}
func (m *mockCache) Stop()                     {}

type mockCacheWithMetrics struct{}

func (m *mockCacheWithMetrics) Get(string) (int, bool) { return 0, false }
func (m *mockCacheWithMetrics) Set(string, int)        {}
func (m *mockCacheWithMetrics) Invalidate(string)      {}
func (m *mockCacheWithMetrics) Clear()                 {}
func (m *mockCacheWithMetrics) Stop()                  {}
func (m *mockCacheWithMetrics) Metrics() Metrics       { return Metrics{} }
