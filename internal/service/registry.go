// Package service contains the cart engine: the per-session line registry,
// selection tracking, delivery workflow, mutation and checkout orchestration.
package service

import (
	"slices"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/money"
	"github.com/shopspring/decimal"
)

// Registry is the authoritative local view of the cart lines.
// It is not safe for concurrent use; the owning Session serializes access.
type Registry struct {
	lines   []*model.CartLine
	summary model.CartSummary
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load replaces the registry contents with a server-rendered listing and
// derives the initial summary from it. Lines with a non-positive quantity
// are skipped.
func (r *Registry) Load(lines []model.CartLine) {
	r.lines = r.lines[:0]
	r.summary = model.CartSummary{TotalPrice: decimal.Zero}

	for _, l := range lines {
		if l.Quantity <= 0 || r.Has(l.ProductID) {
			continue
		}
		line := l
		line.Selected = false
		r.lines = append(r.lines, &line)
		r.summary.TotalQuantity += line.Quantity
		r.summary.TotalPrice = r.summary.TotalPrice.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
}

// ApplyAdded records a confirmed add. A new line starts at quantity 1 with
// the confirmed price; a line already present keeps its last confirmed
// figures. Cart-wide figures are left to ApplyCounter and ApplySummary.
func (r *Registry) ApplyAdded(productID, name string, price decimal.Decimal) {
	if r.Has(productID) {
		return
	}
	r.lines = append(r.lines, &model.CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: price,
		Quantity:  1,
		LineTotal: price,
	})
}

// ApplyAdjusted writes confirmed line figures verbatim. It reports whether
// the line was removed because its quantity reached zero.
func (r *Registry) ApplyAdjusted(productID string, quantity int, lineTotal decimal.Decimal) bool {
	if quantity <= 0 {
		r.remove(productID)
		return true
	}
	if line := r.find(productID); line != nil {
		line.Quantity = quantity
		line.LineTotal = lineTotal
		line.PricedQuantity = 0
	}
	return false
}

// RevertQuantity resets a line's displayed quantity after a rejected change.
// The line total stays at its last confirmed value.
func (r *Registry) RevertQuantity(productID string, quantity int) {
	line := r.find(productID)
	if line == nil || quantity <= 0 || quantity == line.Quantity {
		return
	}
	if line.PricedQuantity == 0 {
		line.PricedQuantity = line.Quantity
	}
	line.Quantity = quantity
}

// ApplyDeleted removes a confirmed deletion.
func (r *Registry) ApplyDeleted(productID string) {
	r.remove(productID)
}

// ApplyCounter sets the badge to a server-reported total quantity.
func (r *Registry) ApplyCounter(totalQuantity int) {
	r.summary.TotalQuantity = totalQuantity
}

// ApplySummary writes server-reported cart figures. A zero total quantity
// means the server cart is empty, so every line is dropped; it reports
// whether that happened.
func (r *Registry) ApplySummary(totalQuantity int, totalPrice decimal.Decimal) bool {
	r.summary = model.CartSummary{TotalQuantity: totalQuantity, TotalPrice: totalPrice}
	if totalQuantity == 0 {
		r.lines = nil
		return true
	}
	return false
}

// Get returns a copy of the line.
func (r *Registry) Get(productID string) (model.CartLine, bool) {
	if line := r.find(productID); line != nil {
		return *line, true
	}
	return model.CartLine{}, false
}

// Has reports whether the line exists.
func (r *Registry) Has(productID string) bool {
	return r.find(productID) != nil
}

// Lines returns copies of the lines in insertion order.
func (r *Registry) Lines() []model.CartLine {
	out := make([]model.CartLine, len(r.lines))
	for i, l := range r.lines {
		out[i] = *l
	}
	return out
}

// IsEmpty reports whether no lines remain.
func (r *Registry) IsEmpty() bool {
	return len(r.lines) == 0
}

// Counter is the cart badge value.
func (r *Registry) Counter() int {
	return r.summary.TotalQuantity
}

// Summary is the last server-reported cart summary.
func (r *Registry) Summary() model.CartSummary {
	return r.summary
}

func (r *Registry) setSelected(productID string, selected bool) bool {
	line := r.find(productID)
	if line == nil {
		return false
	}
	line.Selected = selected
	return true
}

// View renders the lines and cart summary. Selection fields are filled in by
// the Session.
func (r *Registry) View(f *money.Formatter) model.CartView {
	lines := make([]model.LineView, len(r.lines))
	for i, l := range r.lines {
		lines[i] = model.LineView{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			LineTotal:     l.LineTotal,
			LineTotalText: f.Format(l.LineTotal),
			Selected:      l.Selected,
		}
	}
	return model.CartView{
		Lines:   lines,
		Counter: r.Counter(),
		Empty:   r.IsEmpty(),
		Cart:    summaryView(r.summary, f),
	}
}

func summaryView(s model.CartSummary, f *money.Formatter) model.SummaryView {
	return model.SummaryView{
		TotalQuantity:  s.TotalQuantity,
		TotalPrice:     s.TotalPrice,
		TotalPriceText: f.Format(s.TotalPrice),
	}
}

func (r *Registry) find(productID string) *model.CartLine {
	for _, l := range r.lines {
		if l.ProductID == productID {
			return l
		}
	}
	return nil
}

func (r *Registry) remove(productID string) {
	r.lines = slices.DeleteFunc(r.lines, func(l *model.CartLine) bool {
		return l.ProductID == productID
	})
}
