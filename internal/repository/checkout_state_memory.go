package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
)

// MemoryCheckoutStateRepository keeps checkout state in process memory.
// Used when MongoDB is disabled; state does not survive a restart.
type MemoryCheckoutStateRepository struct {
	mu     sync.RWMutex
	states map[string]CheckoutStateDocument
}

// NewMemoryCheckoutStateRepository creates an empty in-memory store.
func NewMemoryCheckoutStateRepository() *MemoryCheckoutStateRepository {
	return &MemoryCheckoutStateRepository{states: make(map[string]CheckoutStateDocument)}
}

// Get returns a copy of the session's state, or nil when nothing has been stored.
func (r *MemoryCheckoutStateRepository) Get(_ context.Context, sessionID string) (*CheckoutStateDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.states[sessionID]
	if !ok {
		return nil, nil
	}
	doc.SelectedProducts = slices.Clone(doc.SelectedProducts)
	if doc.DeliveryInfo != nil {
		info := *doc.DeliveryInfo
		doc.DeliveryInfo = &info
	}
	return &doc, nil
}

// SaveSelection replaces the selected product ids.
func (r *MemoryCheckoutStateRepository) SaveSelection(_ context.Context, sessionID string, productIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.states[sessionID]
	doc.SessionID = sessionID
	doc.SelectedProducts = slices.Clone(productIDs)
	if doc.SelectedProducts == nil {
		doc.SelectedProducts = []string{}
	}
	doc.UpdatedAt = time.Now()
	r.states[sessionID] = doc
	return nil
}

// SaveDeliveryInfo replaces the saved delivery info.
func (r *MemoryCheckoutStateRepository) SaveDeliveryInfo(_ context.Context, sessionID string, info model.DeliveryInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.states[sessionID]
	doc.SessionID = sessionID
	if doc.SelectedProducts == nil {
		doc.SelectedProducts = []string{}
	}
	doc.DeliveryInfo = &info
	doc.UpdatedAt = time.Now()
	r.states[sessionID] = doc
	return nil
}

// Clear removes all checkout state of the session.
func (r *MemoryCheckoutStateRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sessionID)
	return nil
}

// Len returns the number of sessions with stored state.
func (r *MemoryCheckoutStateRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
