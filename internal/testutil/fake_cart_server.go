// Package testutil provides test doubles and testcontainers helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/shopspring/decimal"
)

// FakeCartServer is an in-process stand-in for the upstream cart server.
// It keeps one cart, answers the four cart exchanges in the storefront's wire
// format and refuses increases past Stock.
type FakeCartServer struct {
	*httptest.Server

	mu    sync.Mutex
	lines map[string]*fakeLine

	// Stock caps the quantity of any line; zero means unlimited.
	Stock int
	// RequireLogin makes add-to-cart answer with code 401.
	RequireLogin bool
	// FailPayment makes the pay exchange answer with code 400.
	FailPayment bool
	// Paid records the selected ids of every accepted order.
	Paid [][]string
}

type fakeLine struct {
	name     string
	price    decimal.Decimal
	quantity int
}

// NewFakeCartServer starts a fake cart server. Close it when done.
func NewFakeCartServer() *FakeCartServer {
	f := &FakeCartServer{lines: make(map[string]*fakeLine)}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/add-cart", f.add)
	mux.HandleFunc("/api/update-cart", f.update)
	mux.HandleFunc("/api/delete-cart", f.remove)
	mux.HandleFunc("/api/pay", f.pay)
	f.Server = httptest.NewServer(mux)
	return f
}

// Quantity returns the server-side quantity of a line, zero when absent.
func (f *FakeCartServer) Quantity(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.lines[id]; ok {
		return l.quantity
	}
	return 0
}

func (f *FakeCartServer) totals() (int, decimal.Decimal) {
	qty, amount := 0, decimal.Zero
	for _, l := range f.lines {
		qty += l.quantity
		amount = amount.Add(l.price.Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	return qty, amount
}

func (f *FakeCartServer) add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]interface{}{"code": 400, "message": "bad request"})
		return
	}
	if f.RequireLogin {
		writeJSON(w, map[string]interface{}{"code": 401, "message": "login required"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.lines[req.ID]; ok {
		l.quantity++
	} else {
		f.lines[req.ID] = &fakeLine{name: req.Name, price: req.Price, quantity: 1}
	}
	qty, _ := f.totals()
	writeJSON(w, map[string]interface{}{"code": 200, "data": map[string]interface{}{"total_quantity": qty}})
}

func (f *FakeCartServer) update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Change int    `json:"change"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]interface{}{"code": 500, "message": "bad request"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lines[req.ID]
	if ok && f.Stock > 0 && l.quantity+req.Change > f.Stock {
		writeJSON(w, map[string]interface{}{"code": 400, "current_quantity": l.quantity})
		return
	}

	updatedQty, updatedTotal := 0, decimal.Zero
	if ok {
		l.quantity += req.Change
		if l.quantity > 0 {
			updatedQty = l.quantity
			updatedTotal = l.price.Mul(decimal.NewFromInt(int64(l.quantity)))
		} else {
			delete(f.lines, req.ID)
		}
	}
	qty, amount := f.totals()
	writeJSON(w, map[string]interface{}{
		"code":                200,
		"updated_quantity":    updatedQty,
		"updated_total":       updatedTotal,
		"cart_total_quantity": qty,
		"cart_total_price":    amount,
	})
}

func (f *FakeCartServer) remove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lines, req.ID)
	qty, amount := f.totals()
	writeJSON(w, map[string]interface{}{"cart_total_quantity": qty, "cart_total_price": amount})
}

func (f *FakeCartServer) pay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SelectedProducts []string `json:"selectedProducts"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailPayment || len(f.lines) == 0 {
		writeJSON(w, map[string]interface{}{"code": 400})
		return
	}
	for _, id := range req.SelectedProducts {
		delete(f.lines, id)
	}
	f.Paid = append(f.Paid, req.SelectedProducts)
	writeJSON(w, map[string]interface{}{"code": 200})
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
