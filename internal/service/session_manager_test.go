//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/mocks"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) (SessionManager, *mocks.MockCartClientFactory) {
	factory := &mocks.MockCartClientFactory{Client: new(mocks.MockCartClient)}
	m := NewSessionManager(
		SessionManagerConfig{Capacity: 100, TTL: ttl, NumShards: 4},
		factory,
		repository.NewMemoryCheckoutStateRepository(),
		SessionOptions{LoginPath: "/user-login", LandingPath: "/"},
	)
	return m, factory
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	m, factory := newTestManager(time.Minute)
	defer m.Stop()

	s, err := m.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	other, err := m.Create()
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
	require.Len(t, factory.Jars, 2)
	assert.NotSame(t, factory.Jars[0], factory.Jars[1], "each session gets its own cookie jar")
}

func TestSessionManager_GetUnknown(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	defer m.Stop()

	_, err := m.Get("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_Expiry(t *testing.T) {
	m, _ := newTestManager(50 * time.Millisecond)
	defer m.Stop()

	s, err := m.Create()
	require.NoError(t, err)
	time.Sleep(250 * time.Millisecond)

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Count(), "an expired session is released on lookup")
}

func TestSessionManager_Remove(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	defer m.Stop()

	s, err := m.Create()
	require.NoError(t, err)
	m.Remove(s.ID)

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Count())
}
