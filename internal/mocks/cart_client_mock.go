// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"net/http"

	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCartClient struct {
	mock.Mock
}

func (m *MockCartClient) AddItem(ctx context.Context, productID, name string, price decimal.Decimal) client.AddResult {
	args := m.Called(ctx, productID, name, price)
	return args.Get(0).(client.AddResult)
}

func (m *MockCartClient) AdjustQuantity(ctx context.Context, productID string, change int) client.AdjustResult {
	args := m.Called(ctx, productID, change)
	return args.Get(0).(client.AdjustResult)
}

func (m *MockCartClient) DeleteItem(ctx context.Context, productID string) client.DeleteResult {
	args := m.Called(ctx, productID)
	return args.Get(0).(client.DeleteResult)
}

func (m *MockCartClient) SubmitOrder(ctx context.Context, info model.DeliveryInfo, selected []string) client.SubmitResult {
	args := m.Called(ctx, info, selected)
	return args.Get(0).(client.SubmitResult)
}

// MockCartClientFactory hands out the same client for every session.
type MockCartClientFactory struct {
	Client client.CartClient
	Jars   []http.CookieJar
}

func (f *MockCartClientFactory) ForSession(jar http.CookieJar) client.CartClient {
	f.Jars = append(f.Jars, jar)
	return f.Client
}

var (
	_ client.CartClient        = (*MockCartClient)(nil)
	_ client.CartClientFactory = (*MockCartClientFactory)(nil)
)
