// Package dto defines Data Transfer Objects for the public API and the upstream cart server.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidProductID is returned when a product id is blank.
	ErrInvalidProductID = &ValidationError{Field: "id", Message: "must not be empty"}
	// ErrInvalidPrice is returned when a price is negative.
	ErrInvalidPrice = &ValidationError{Field: "price", Message: "must not be negative"}
	// ErrInvalidQuantity is returned when a reloaded line has no quantity.
	ErrInvalidQuantity = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
)

// AddItemRequest is the body of POST /api/cart/items.
//
// @Description Add a product to the cart
type AddItemRequest struct {
	ProductID string          `json:"id" binding:"required" example:"B1"`
	Name      string          `json:"name" binding:"required" example:"Dế Mèn Phiêu Lưu Ký"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"100000"`
} // @name AddItemRequest

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return ErrInvalidProductID
	}
	if r.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// AdjustQuantityRequest is the body of POST /api/cart/items/:id/adjust.
type AdjustQuantityRequest struct {
	// Change is +1 or -1.
	Change int `json:"change" binding:"required" example:"1"`
} // @name AdjustQuantityRequest

// ReloadLine is one server-rendered cart line.
type ReloadLine struct {
	ProductID string          `json:"id" binding:"required" example:"B1"`
	Name      string          `json:"name" example:"Dế Mèn Phiêu Lưu Ký"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"100000"`
	Quantity  int             `json:"quantity" example:"1"`
} // @name ReloadLine

// ReloadCartRequest is the body of PUT /api/cart: the listing rendered on page load.
type ReloadCartRequest struct {
	Lines []ReloadLine `json:"lines"`
} // @name ReloadCartRequest

// Validate performs custom validation on the request.
func (r *ReloadCartRequest) Validate() error {
	for _, l := range r.Lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return ErrInvalidProductID
		}
		if l.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if l.Price.IsNegative() {
			return ErrInvalidPrice
		}
	}
	return nil
}

// ToCartLines converts the listing into registry lines. Line totals are quantity × price.
func (r *ReloadCartRequest) ToCartLines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, model.CartLine{
			ProductID: strings.TrimSpace(l.ProductID),
			Name:      l.Name,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
			LineTotal: l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return lines
}

// SelectionRequest is the body of the line and select-all toggles.
type SelectionRequest struct {
	Selected *bool `json:"selected" binding:"required" example:"true"`
} // @name SelectionRequest

// SelectMethodRequest is the body of POST /api/delivery/method.
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required" example:"home"`
} // @name SelectMethodRequest

// DeliveryFormRequest is the body of PUT /api/delivery/form and, optionally, of
// POST /api/delivery/confirm.
type DeliveryFormRequest struct {
	Method string             `json:"method" example:"home"`
	Form   model.DeliveryForm `json:"form"`
} // @name DeliveryFormRequest
