package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned for an unknown or expired session.
var ErrSessionNotFound = errors.New("session not found")

// SessionManagerConfig sizes the session cache.
type SessionManagerConfig struct {
	Capacity  int
	TTL       time.Duration
	NumShards int
}

// SessionManager creates cart sessions and looks them up by id.
type SessionManager interface {
	// Create starts a new session.
	Create() (*Session, error)
	// Get returns a live session and extends its lifetime.
	Get(sessionID string) (*Session, error)
	// Remove ends a session.
	Remove(sessionID string)
	// Count returns the number of sessions held.
	Count() int
	// Stop releases background resources.
	Stop()
}

// SessionManagerImpl keeps sessions in a sharded TTL cache.
type SessionManagerImpl struct {
	sessions *ShardedCache[*Session]
	clients  client.CartClientFactory
	repo     repository.CheckoutStateRepositoryInterface
	opts     SessionOptions
}

// NewSessionManager creates a session manager.
func NewSessionManager(
	cfg SessionManagerConfig,
	clients client.CartClientFactory,
	repo repository.CheckoutStateRepositoryInterface,
	opts SessionOptions,
) SessionManager {
	m := &SessionManagerImpl{
		clients: clients,
		repo:    repo,
		opts:    opts,
	}
	m.sessions = NewShardedCache[*Session](cfg.Capacity, cfg.TTL, cfg.NumShards, m.released)
	return m
}

// released is called once an idle or displaced session leaves the cache.
func (m *SessionManagerImpl) released(sessionID string, _ *Session, reason string) {
	log.Debug().Str("session_id", sessionID).Str("reason", reason).Msg("Cart session released")
	metrics.UpdateSessionsActive(m.sessions.Len())
}

// Create starts a new session with a random id.
func (m *SessionManagerImpl) Create() (*Session, error) {
	s, err := NewSession(uuid.NewString(), m.clients, m.repo, m.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	m.sessions.Set(s.ID, s)
	metrics.UpdateSessionsActive(m.sessions.Len())
	return s, nil
}

// Get returns a live session.
func (m *SessionManagerImpl) Get(sessionID string) (*Session, error) {
	s, ok := m.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove ends a session. Its persisted checkout state expires on its own.
func (m *SessionManagerImpl) Remove(sessionID string) {
	m.sessions.Invalidate(sessionID)
	metrics.UpdateSessionsActive(m.sessions.Len())
}

// Count returns the number of sessions held.
func (m *SessionManagerImpl) Count() int {
	return m.sessions.Len()
}

// Stop shuts down the cache cleanup goroutines.
func (m *SessionManagerImpl) Stop() {
	m.sessions.Stop()
}
