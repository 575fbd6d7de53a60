package service

import (
	"context"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/money"
	"github.com/shopspring/decimal"
)

// SelectionTracker tracks which lines are marked for checkout and keeps the
// selected subtotal. Every recompute persists the selected ids.
type SelectionTracker struct {
	registry *Registry
	store    *CheckoutStore
	summary  model.CartSummary
}

// NewSelectionTracker creates a tracker over the registry's lines.
func NewSelectionTracker(registry *Registry, store *CheckoutStore) *SelectionTracker {
	return &SelectionTracker{
		registry: registry,
		store:    store,
		summary:  model.CartSummary{TotalPrice: decimal.Zero},
	}
}

// ToggleLine marks or unmarks one line. It reports false when the line is unknown.
func (t *SelectionTracker) ToggleLine(ctx context.Context, productID string, selected bool) (bool, error) {
	if !t.registry.setSelected(productID, selected) {
		return false, nil
	}
	return true, t.Recompute(ctx)
}

// ToggleAll marks or unmarks every line.
func (t *SelectionTracker) ToggleAll(ctx context.Context, selected bool) error {
	for _, l := range t.registry.lines {
		l.Selected = selected
	}
	return t.Recompute(ctx)
}

// Recompute derives the selected subtotal from the registry and persists the
// selected ids.
func (t *SelectionTracker) Recompute(ctx context.Context) error {
	summary := model.CartSummary{TotalPrice: decimal.Zero}
	ids := make([]string, 0, len(t.registry.lines))

	for _, l := range t.registry.lines {
		if !l.Selected {
			continue
		}
		ids = append(ids, l.ProductID)
		summary.TotalQuantity += l.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(l.SelectedSubtotal())
	}

	t.summary = summary
	return t.store.SaveSelection(ctx, ids)
}

// Drop recomputes after a line left the registry.
func (t *SelectionTracker) Drop(ctx context.Context, _ string) error {
	return t.Recompute(ctx)
}

// Clear unmarks every line and persists the empty selection.
func (t *SelectionTracker) Clear(ctx context.Context) error {
	return t.ToggleAll(ctx, false)
}

// Release unmarks ids once they have been ordered. Lines marked since are
// kept and persisted again; with nothing left the store is not touched.
func (t *SelectionTracker) Release(ctx context.Context, ids []string) error {
	for _, id := range ids {
		t.registry.setSelected(id, false)
	}
	if len(t.SelectedIDs()) == 0 {
		t.Reset()
		return nil
	}
	return t.Recompute(ctx)
}

// Reset unmarks every line locally without touching the store.
func (t *SelectionTracker) Reset() {
	for _, l := range t.registry.lines {
		l.Selected = false
	}
	t.summary = model.CartSummary{TotalPrice: decimal.Zero}
}

// IsSelected reports whether the line is marked for checkout.
func (t *SelectionTracker) IsSelected(productID string) bool {
	l := t.registry.find(productID)
	return l != nil && l.Selected
}

// SelectedIDs returns the marked ids in registry order.
func (t *SelectionTracker) SelectedIDs() []string {
	ids := make([]string, 0, len(t.registry.lines))
	for _, l := range t.registry.lines {
		if l.Selected {
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}

// Summary is the last computed selected subtotal.
func (t *SelectionTracker) Summary() model.CartSummary {
	return t.summary
}

// View renders the selected subtotal.
func (t *SelectionTracker) View(f *money.Formatter) model.SummaryView {
	return summaryView(t.summary, f)
}
