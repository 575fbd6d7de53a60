package service

import (
	"context"
	"fmt"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/repository"
)

// CheckoutStore is the persisted checkout-scoped state of one session:
// the ids selected for checkout and the confirmed delivery info.
type CheckoutStore struct {
	repo      repository.CheckoutStateRepositoryInterface
	sessionID string
}

// NewCheckoutStore binds the repository to a session.
func NewCheckoutStore(repo repository.CheckoutStateRepositoryInterface, sessionID string) *CheckoutStore {
	return &CheckoutStore{repo: repo, sessionID: sessionID}
}

// State returns the persisted selection and delivery info. Both are empty
// when nothing has been stored.
func (s *CheckoutStore) State(ctx context.Context) ([]string, *model.DeliveryInfo, error) {
	doc, err := s.repo.Get(ctx, s.sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load checkout state: %w", err)
	}
	if doc == nil {
		return nil, nil, nil
	}
	return doc.SelectedProducts, doc.DeliveryInfo, nil
}

// DeliveryInfo returns the saved delivery info, or nil.
func (s *CheckoutStore) DeliveryInfo(ctx context.Context) (*model.DeliveryInfo, error) {
	_, info, err := s.State(ctx)
	return info, err
}

// SaveSelection replaces the persisted selection.
func (s *CheckoutStore) SaveSelection(ctx context.Context, productIDs []string) error {
	if err := s.repo.SaveSelection(ctx, s.sessionID, productIDs); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// SaveDeliveryInfo replaces the persisted delivery info.
func (s *CheckoutStore) SaveDeliveryInfo(ctx context.Context, info model.DeliveryInfo) error {
	if err := s.repo.SaveDeliveryInfo(ctx, s.sessionID, info); err != nil {
		return fmt.Errorf("failed to save delivery info: %w", err)
	}
	return nil
}

// Clear removes the selection and the delivery info.
func (s *CheckoutStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx, s.sessionID); err != nil {
		return fmt.Errorf("failed to clear checkout state: %w", err)
	}
	return nil
}
