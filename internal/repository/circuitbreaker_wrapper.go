package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/domain/model"
)

// guard runs fn under cb and returns its result.
func guard[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// CheckoutStateRepositoryWithCircuitBreaker wraps a checkout store with circuit breaker protection.
// Unlike logging, checkout state is not optional: an open circuit surfaces as ErrCircuitOpen.
type CheckoutStateRepositoryWithCircuitBreaker struct {
	repo           CheckoutStateRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCheckoutStateRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCheckoutStateRepositoryWithCircuitBreaker(repo CheckoutStateRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CheckoutStateRepositoryWithCircuitBreaker {
	return &CheckoutStateRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns the session's checkout state.
func (r *CheckoutStateRepositoryWithCircuitBreaker) Get(ctx context.Context, sessionID string) (*CheckoutStateDocument, error) {
	return guard(ctx, r.circuitBreaker, func() (*CheckoutStateDocument, error) {
		return r.repo.Get(ctx, sessionID)
	})
}

// SaveSelection replaces the selected product ids.
func (r *CheckoutStateRepositoryWithCircuitBreaker) SaveSelection(ctx context.Context, sessionID string, productIDs []string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SaveSelection(ctx, sessionID, productIDs)
	})
}

// SaveDeliveryInfo replaces the saved delivery info.
func (r *CheckoutStateRepositoryWithCircuitBreaker) SaveDeliveryInfo(ctx context.Context, sessionID string, info model.DeliveryInfo) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SaveDeliveryInfo(ctx, sessionID, info)
	})
}

// Clear removes the session's checkout state.
func (r *CheckoutStateRepositoryWithCircuitBreaker) Clear(ctx context.Context, sessionID string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Clear(ctx, sessionID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CheckoutStateRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
// Writes are dropped silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

// CreateMany stores multiple log entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// Query retrieves log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guard(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guard(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
