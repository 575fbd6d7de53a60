// Package model defines the core domain entities for the cart synchronization service.
package model

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places money amounts are rounded to.
const MoneyScale = 2

// CartLine is one product entry in the shopper's cart.
//
// UnitPrice, Quantity and LineTotal are server-authoritative: they only change when the
// upstream cart server confirms a mutation. Selected is client-local.
type CartLine struct {
	ProductID string          `json:"product_id" bson:"product_id"`
	Name      string          `json:"name" bson:"name"`
	UnitPrice decimal.Decimal `json:"unit_price" bson:"unit_price"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	LineTotal decimal.Decimal `json:"line_total" bson:"line_total"`
	Selected  bool            `json:"selected" bson:"-"`

	// PricedQuantity is the quantity LineTotal was confirmed for when the
	// displayed Quantity was reverted without new figures. Zero means Quantity.
	PricedQuantity int `json:"-" bson:"-"`
}

// EffectiveUnitPrice returns the per-unit price implied by the server-reported line total.
// It differs from UnitPrice when the server applies promotional pricing.
func (l CartLine) EffectiveUnitPrice() decimal.Decimal {
	priced := l.Quantity
	if l.PricedQuantity > 0 {
		priced = l.PricedQuantity
	}
	if priced <= 0 {
		return decimal.Zero
	}
	return l.LineTotal.Div(decimal.NewFromInt(int64(priced)))
}

// SelectedSubtotal returns quantity × effective unit price, rounded to MoneyScale.
func (l CartLine) SelectedSubtotal() decimal.Decimal {
	return l.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity))).Round(MoneyScale)
}

// CartSummary is a derived total quantity and total price.
type CartSummary struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// IsEmpty reports whether the summary covers no items.
func (s CartSummary) IsEmpty() bool {
	return s.TotalQuantity == 0
}
