//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/mocks"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T, lines ...model.CartLine) (*SelectionTracker, *Registry, *repository.MemoryCheckoutStateRepository) {
	t.Helper()
	repo := repository.NewMemoryCheckoutStateRepository()
	r := NewRegistry()
	r.Load(lines)
	return NewSelectionTracker(r, NewCheckoutStore(repo, "s1")), r, repo
}

func persistedSelection(t *testing.T, repo *repository.MemoryCheckoutStateRepository) []string {
	t.Helper()
	doc, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	if doc == nil {
		return nil
	}
	return doc.SelectedProducts
}

func TestSelectionTracker_ToggleLine(t *testing.T) {
	ctx := context.Background()
	tracker, _, repo := newTestTracker(t, cartLine("B1", "100000", 3), cartLine("B2", "50000", 2))

	ok, err := tracker.ToggleLine(ctx, "B1", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, tracker.Summary().TotalQuantity)
	assert.Equal(t, "300000", tracker.Summary().TotalPrice.String())
	assert.Equal(t, []string{"B1"}, persistedSelection(t, repo))

	ok, err = tracker.ToggleLine(ctx, "B2", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, tracker.Summary().TotalQuantity)
	assert.Equal(t, "400000", tracker.Summary().TotalPrice.String())
	assert.Equal(t, []string{"B1", "B2"}, persistedSelection(t, repo))

	ok, err = tracker.ToggleLine(ctx, "B1", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"B2"}, tracker.SelectedIDs())

	ok, err = tracker.ToggleLine(ctx, "missing", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectionTracker_ToggleAll(t *testing.T) {
	ctx := context.Background()
	tracker, _, repo := newTestTracker(t, cartLine("B1", "100000", 1), cartLine("B2", "50000", 2))

	require.NoError(t, tracker.ToggleAll(ctx, true))
	assert.Equal(t, []string{"B1", "B2"}, persistedSelection(t, repo))
	assert.Equal(t, "200000", tracker.Summary().TotalPrice.String())

	require.NoError(t, tracker.Clear(ctx))
	assert.Empty(t, persistedSelection(t, repo))
	assert.True(t, tracker.Summary().IsEmpty())
}

func TestSelectionTracker_UsesEffectiveUnitPrice(t *testing.T) {
	ctx := context.Background()
	promo := cartLine("B1", "100000", 3)
	promo.LineTotal = dec("250000")
	tracker, _, _ := newTestTracker(t, promo)

	require.NoError(t, tracker.ToggleAll(ctx, true))

	assert.Equal(t, "250000", tracker.Summary().TotalPrice.String())
}

func TestSelectionTracker_DropRemovedLine(t *testing.T) {
	ctx := context.Background()
	tracker, registry, repo := newTestTracker(t, cartLine("B1", "100000", 1), cartLine("B2", "50000", 1))
	require.NoError(t, tracker.ToggleAll(ctx, true))

	registry.ApplyDeleted("B1")
	require.NoError(t, tracker.Drop(ctx, "B1"))

	assert.Equal(t, []string{"B2"}, persistedSelection(t, repo))
	assert.Equal(t, "50000", tracker.Summary().TotalPrice.String())
	assert.False(t, tracker.IsSelected("B1"))
}

func TestSelectionTracker_Reset(t *testing.T) {
	ctx := context.Background()
	tracker, _, repo := newTestTracker(t, cartLine("B1", "100000", 1))
	require.NoError(t, tracker.ToggleAll(ctx, true))

	tracker.Reset()

	assert.Empty(t, tracker.SelectedIDs())
	assert.True(t, tracker.Summary().IsEmpty())
	assert.Equal(t, []string{"B1"}, persistedSelection(t, repo), "reset does not touch the store")
}

func TestSelectionTracker_StoreError(t *testing.T) {
	repo := new(mocks.MockCheckoutStateRepositoryInterface)
	repo.On("SaveSelection", mock.Anything, "s1", []string{"B1"}).Return(errors.New("connection refused"))

	r := NewRegistry()
	r.Load([]model.CartLine{cartLine("B1", "100000", 1)})
	tracker := NewSelectionTracker(r, NewCheckoutStore(repo, "s1"))

	_, err := tracker.ToggleLine(context.Background(), "B1", true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save selection")
	repo.AssertExpectations(t)
}
