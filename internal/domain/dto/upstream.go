package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Upstream result codes carried in the "code" field of cart server responses.
const (
	UpstreamCodeOK           = 200
	UpstreamCodeRejected     = 400
	UpstreamCodeUnauthorized = 401
)

// AddCartRequest is the body of the upstream add-to-cart exchange.
type AddCartRequest struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

// NewAddCartRequest renders the price as a bare JSON number.
func NewAddCartRequest(id, name string, price decimal.Decimal) AddCartRequest {
	return AddCartRequest{ID: id, Name: name, Price: json.Number(price.String())}
}

// AddCartResponse accepts both the flat and the nested total_quantity shapes.
type AddCartResponse struct {
	Code          *int   `json:"code"`
	Message       string `json:"message"`
	TotalQuantity *int   `json:"total_quantity"`
	Data          *struct {
		TotalQuantity *int `json:"total_quantity"`
	} `json:"data"`
}

// Total returns the cart-wide quantity from whichever shape the server used.
func (r AddCartResponse) Total() (int, bool) {
	if r.TotalQuantity != nil {
		return *r.TotalQuantity, true
	}
	if r.Data != nil && r.Data.TotalQuantity != nil {
		return *r.Data.TotalQuantity, true
	}
	return 0, false
}

// UpdateCartRequest is the body of the upstream adjust-quantity exchange.
type UpdateCartRequest struct {
	ID     string `json:"id"`
	Change int    `json:"change"`
}

// UpdateCartResponse is the upstream adjust-quantity response.
type UpdateCartResponse struct {
	Code              *int             `json:"code"`
	Message           string           `json:"message"`
	UpdatedQuantity   *int             `json:"updated_quantity"`
	UpdatedTotal      *decimal.Decimal `json:"updated_total"`
	CartTotalQuantity *int             `json:"cart_total_quantity"`
	CartTotalPrice    *decimal.Decimal `json:"cart_total_price"`
	CurrentQuantity   *int             `json:"current_quantity"`
}

// Complete reports whether every figure of a successful adjustment is present.
func (r UpdateCartResponse) Complete() bool {
	return r.UpdatedQuantity != nil && r.UpdatedTotal != nil &&
		r.CartTotalQuantity != nil && r.CartTotalPrice != nil
}

// DeleteCartRequest is the body of the upstream delete exchange.
type DeleteCartRequest struct {
	ID string `json:"id"`
}

// DeleteCartResponse is the upstream delete response.
type DeleteCartResponse struct {
	Code              *int             `json:"code"`
	Message           string           `json:"message"`
	CartTotalQuantity *int             `json:"cart_total_quantity"`
	CartTotalPrice    *decimal.Decimal `json:"cart_total_price"`
}

// PayRequest is the checkout submission: the saved delivery info plus the selected ids.
type PayRequest struct {
	DeliveryMethod   string   `json:"delivery_method"`
	PaymentMethod    string   `json:"payment_method"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	DeliveryAddress  string   `json:"delivery_address,omitempty"`
	SelectedProducts []string `json:"selectedProducts"`
}

// PayResponse is the upstream checkout response.
type PayResponse struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
}
