//go:build !integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCheckoutStateRepository(t *testing.T) {
	ctx := context.Background()
	info := model.DeliveryInfo{
		Method:        model.DeliveryStore,
		PaymentMethod: "pay_at_store",
		Phone:         "0901234567",
		Email:         "shopper@example.com",
	}

	tests := []struct {
		name   string
		setup  func(*MemoryCheckoutStateRepository)
		verify func(*testing.T, *CheckoutStateDocument)
	}{
		{
			name:  "unknown session has no state",
			setup: func(*MemoryCheckoutStateRepository) {},
			verify: func(t *testing.T, doc *CheckoutStateDocument) {
				assert.Nil(t, doc)
			},
		},
		{
			name: "selection is stored",
			setup: func(r *MemoryCheckoutStateRepository) {
				require.NoError(t, r.SaveSelection(ctx, "s1", []string{"B1", "B2"}))
			},
			verify: func(t *testing.T, doc *CheckoutStateDocument) {
				require.NotNil(t, doc)
				assert.Equal(t, []string{"B1", "B2"}, doc.SelectedProducts)
				assert.Nil(t, doc.DeliveryInfo)
			},
		},
		{
			name: "delivery info keeps selection",
			setup: func(r *MemoryCheckoutStateRepository) {
				require.NoError(t, r.SaveSelection(ctx, "s1", []string{"B1"}))
				require.NoError(t, r.SaveDeliveryInfo(ctx, "s1", info))
			},
			verify: func(t *testing.T, doc *CheckoutStateDocument) {
				require.NotNil(t, doc)
				assert.Equal(t, []string{"B1"}, doc.SelectedProducts)
				require.NotNil(t, doc.DeliveryInfo)
				assert.Equal(t, info, *doc.DeliveryInfo)
			},
		},
		{
			name: "nil selection is stored as empty",
			setup: func(r *MemoryCheckoutStateRepository) {
				require.NoError(t, r.SaveSelection(ctx, "s1", nil))
			},
			verify: func(t *testing.T, doc *CheckoutStateDocument) {
				require.NotNil(t, doc)
				assert.NotNil(t, doc.SelectedProducts)
				assert.Empty(t, doc.SelectedProducts)
			},
		},
		{
			name: "clear removes everything",
			setup: func(r *MemoryCheckoutStateRepository) {
				require.NoError(t, r.SaveSelection(ctx, "s1", []string{"B1"}))
				require.NoError(t, r.SaveDeliveryInfo(ctx, "s1", info))
				require.NoError(t, r.Clear(ctx, "s1"))
			},
			verify: func(t *testing.T, doc *CheckoutStateDocument) {
				assert.Nil(t, doc)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryCheckoutStateRepository()
			tt.setup(repo)
			doc, err := repo.Get(ctx, "s1")
			require.NoError(t, err)
			tt.verify(t, doc)
		})
	}
}

func TestMemoryCheckoutStateRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCheckoutStateRepository()
	ids := []string{"B1"}
	require.NoError(t, repo.SaveSelection(ctx, "s1", ids))
	ids[0] = "mutated"

	doc, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	doc.SelectedProducts[0] = "mutated-again"

	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, again.SelectedProducts)
}

func TestMemoryCheckoutStateRepository_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCheckoutStateRepository()
	require.NoError(t, repo.SaveSelection(ctx, "s1", []string{"B1"}))
	require.NoError(t, repo.SaveSelection(ctx, "s2", []string{"B2"}))
	require.NoError(t, repo.Clear(ctx, "s1"))

	assert.Equal(t, 1, repo.Len())
	doc, err := repo.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"B2"}, doc.SelectedProducts)
}
