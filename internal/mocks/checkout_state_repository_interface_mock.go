// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutStateRepositoryInterface struct {
	mock.Mock
}

func (m *MockCheckoutStateRepositoryInterface) Get(ctx context.Context, sessionID string) (*repository.CheckoutStateDocument, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CheckoutStateDocument), args.Error(1)
}

func (m *MockCheckoutStateRepositoryInterface) SaveSelection(ctx context.Context, sessionID string, productIDs []string) error {
	args := m.Called(ctx, sessionID, productIDs)
	return args.Error(0)
}

func (m *MockCheckoutStateRepositoryInterface) SaveDeliveryInfo(ctx context.Context, sessionID string, info model.DeliveryInfo) error {
	args := m.Called(ctx, sessionID, info)
	return args.Error(0)
}

func (m *MockCheckoutStateRepositoryInterface) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var _ repository.CheckoutStateRepositoryInterface = (*MockCheckoutStateRepositoryInterface)(nil)
