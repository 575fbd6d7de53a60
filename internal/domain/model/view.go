package model

import "github.com/shopspring/decimal"

// LineView is the rendered surface of a single cart line.
type LineView struct {
	ProductID     string          `json:"product_id" example:"B1"`
	Name          string          `json:"name" example:"Dế Mèn Phiêu Lưu Ký"`
	Quantity      int             `json:"quantity" example:"3"`
	UnitPrice     decimal.Decimal `json:"unit_price" swaggertype:"string" example:"100000"`
	LineTotal     decimal.Decimal `json:"line_total" swaggertype:"string" example:"300000"`
	LineTotalText string          `json:"line_total_text" example:"300.000 VND"`
	Selected      bool            `json:"selected"`
}

// SummaryView is a rendered CartSummary.
type SummaryView struct {
	TotalQuantity  int             `json:"total_quantity" example:"3"`
	TotalPrice     decimal.Decimal `json:"total_price" swaggertype:"string" example:"300000"`
	TotalPriceText string          `json:"total_price_text" example:"300.000 VND"`
}

// CartView is everything the cart page renders from the engine state.
//
// @Description Rendered cart state after an action
type CartView struct {
	Lines     []LineView  `json:"lines"`
	Counter   int         `json:"counter" example:"3"`
	Empty     bool        `json:"empty"`
	Cart      SummaryView `json:"cart"`
	Selection SummaryView `json:"selection"`
	// SelectedProducts lists the ids currently marked for checkout.
	SelectedProducts []string `json:"selected_products"`
} // @name CartView
