package repository

import (
	"context"

	"github.com/guttosm/cart-sync/internal/domain/model"
)

// CheckoutStateRepositoryInterface is the checkout-scoped persisted store.
type CheckoutStateRepositoryInterface interface {
	Get(ctx context.Context, sessionID string) (*CheckoutStateDocument, error)
	SaveSelection(ctx context.Context, sessionID string, productIDs []string) error
	SaveDeliveryInfo(ctx context.Context, sessionID string, info model.DeliveryInfo) error
	Clear(ctx context.Context, sessionID string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ CheckoutStateRepositoryInterface = (*CheckoutStateRepository)(nil)
	_ CheckoutStateRepositoryInterface = (*MemoryCheckoutStateRepository)(nil)
	_ CheckoutStateRepositoryInterface = (*CheckoutStateRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface          = (*LogsRepository)(nil)
	_ LogsRepositoryInterface          = (*LogsRepositoryWithCircuitBreaker)(nil)
)
