//go:build !integration

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream serves a fixed status and body and records the last request body.
type upstream struct {
	status   int
	body     string
	lastBody map[string]interface{}
	lastPath string
	headers  http.Header
}

func (u *upstream) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.lastPath = r.URL.Path
		u.headers = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		u.lastBody = map[string]interface{}{}
		_ = json.Unmarshal(raw, &u.lastBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		_, _ = w.Write([]byte(u.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newCartClient(t *testing.T, srv *httptest.Server) CartClient {
	t.Helper()
	c, err := NewClient("cart-server", srv.URL, time.Second, nil)
	require.NoError(t, err)
	return NewCartService(c, DefaultPaths()).ForSession(nil)
}

func TestCartClient_AddItem(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedOutcome model.OutcomeStatus
		expectedTotal   int
		expectedMessage string
	}{
		{
			name:            "flat total",
			status:          http.StatusOK,
			body:            `{"code":200,"total_quantity":3}`,
			expectedOutcome: model.OutcomeApplied,
			expectedTotal:   3,
		},
		{
			name:            "nested total",
			status:          http.StatusOK,
			body:            `{"code":200,"data":{"total_quantity":5}}`,
			expectedOutcome: model.OutcomeApplied,
			expectedTotal:   5,
		},
		{
			name:            "login required",
			status:          http.StatusOK,
			body:            `{"code":401,"message":"login first"}`,
			expectedOutcome: model.OutcomeAuthRequired,
			expectedMessage: "login first",
		},
		{
			name:            "other code carries message verbatim",
			status:          http.StatusOK,
			body:            `{"code":500,"message":"Sản phẩm đã hết hàng"}`,
			expectedOutcome: model.OutcomeFailed,
			expectedMessage: "Sản phẩm đã hết hàng",
		},
		{
			name:            "success without total is malformed",
			status:          http.StatusOK,
			body:            `{"code":200}`,
			expectedOutcome: model.OutcomeFailed,
		},
		{
			name:            "undecodable body",
			status:          http.StatusOK,
			body:            `<html>oops</html>`,
			expectedOutcome: model.OutcomeFailed,
		},
		{
			name:            "redirect to login page",
			status:          http.StatusFound,
			body:            ``,
			expectedOutcome: model.OutcomeAuthRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &upstream{status: tt.status, body: tt.body}
			cc := newCartClient(t, up.server(t))

			res := cc.AddItem(context.Background(), "B1", "Book", decimal.NewFromInt(100000))

			assert.Equal(t, tt.expectedOutcome, res.Outcome)
			assert.Equal(t, tt.expectedTotal, res.TotalQuantity)
			assert.Equal(t, tt.expectedMessage, res.Message)
			assert.Equal(t, "/api/add-cart", up.lastPath)
			assert.Equal(t, "B1", up.lastBody["id"])
			assert.Equal(t, float64(100000), up.lastBody["price"])
		})
	}
}

func TestCartClient_AdjustQuantity(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedOutcome model.OutcomeStatus
		verify          func(*testing.T, AdjustResult)
	}{
		{
			name:            "applied",
			status:          http.StatusOK,
			body:            `{"code":200,"updated_quantity":3,"updated_total":300000,"cart_total_quantity":4,"cart_total_price":350000}`,
			expectedOutcome: model.OutcomeApplied,
			verify: func(t *testing.T, r AdjustResult) {
				assert.Equal(t, 3, r.Quantity)
				assert.True(t, r.LineTotal.Equal(decimal.NewFromInt(300000)))
				assert.Equal(t, 4, r.CartQuantity)
				assert.True(t, r.CartPrice.Equal(decimal.NewFromInt(350000)))
			},
		},
		{
			name:            "stock rejection carries current quantity",
			status:          http.StatusOK,
			body:            `{"code":400,"current_quantity":3}`,
			expectedOutcome: model.OutcomeRejected,
			verify: func(t *testing.T, r AdjustResult) {
				require.NotNil(t, r.CurrentQuantity)
				assert.Equal(t, 3, *r.CurrentQuantity)
			},
		},
		{
			name:            "stock rejection without current quantity",
			status:          http.StatusOK,
			body:            `{"code":400}`,
			expectedOutcome: model.OutcomeRejected,
			verify: func(t *testing.T, r AdjustResult) {
				assert.Nil(t, r.CurrentQuantity)
			},
		},
		{
			name:            "http unauthorized",
			status:          http.StatusUnauthorized,
			body:            `{"message":"Unauthorized"}`,
			expectedOutcome: model.OutcomeAuthRequired,
		},
		{
			name:            "missing figures",
			status:          http.StatusOK,
			body:            `{"code":200,"updated_quantity":3}`,
			expectedOutcome: model.OutcomeFailed,
			verify: func(t *testing.T, r AdjustResult) {
				assert.ErrorIs(t, r.Err, ErrMalformedResponse)
			},
		},
		{
			name:            "server error",
			status:          http.StatusInternalServerError,
			body:            `{"message":"boom"}`,
			expectedOutcome: model.OutcomeFailed,
			verify: func(t *testing.T, r AdjustResult) {
				assert.ErrorIs(t, r.Err, ErrServerStatus)
				assert.Equal(t, "boom", r.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &upstream{status: tt.status, body: tt.body}
			cc := newCartClient(t, up.server(t))

			res := cc.AdjustQuantity(context.Background(), "B1", 1)

			assert.Equal(t, tt.expectedOutcome, res.Outcome)
			assert.Equal(t, "/api/update-cart", up.lastPath)
			assert.Equal(t, float64(1), up.lastBody["change"])
			if tt.verify != nil {
				tt.verify(t, res)
			}
		})
	}
}

func TestCartClient_DeleteItem(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedOutcome model.OutcomeStatus
		expectedQty     int
	}{
		{
			name:            "applied without code",
			status:          http.StatusOK,
			body:            `{"cart_total_quantity":0,"cart_total_price":0}`,
			expectedOutcome: model.OutcomeApplied,
			expectedQty:     0,
		},
		{
			name:            "applied with code",
			status:          http.StatusOK,
			body:            `{"code":200,"cart_total_quantity":2,"cart_total_price":200000}`,
			expectedOutcome: model.OutcomeApplied,
			expectedQty:     2,
		},
		{
			name:            "missing price",
			status:          http.StatusOK,
			body:            `{"cart_total_quantity":2}`,
			expectedOutcome: model.OutcomeFailed,
		},
		{
			name:            "non-2xx",
			status:          http.StatusNotFound,
			body:            `{"cart_total_quantity":2,"cart_total_price":1}`,
			expectedOutcome: model.OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &upstream{status: tt.status, body: tt.body}
			cc := newCartClient(t, up.server(t))

			res := cc.DeleteItem(context.Background(), "B1")

			assert.Equal(t, tt.expectedOutcome, res.Outcome)
			assert.Equal(t, tt.expectedQty, res.CartQuantity)
			assert.Equal(t, "/api/delete-cart", up.lastPath)
		})
	}
}

func TestCartClient_SubmitOrder(t *testing.T) {
	info := model.DeliveryInfo{
		Method:        model.DeliveryHome,
		PaymentMethod: "cod",
		Phone:         "0901234567",
		Email:         "shopper@example.com",
		Address:       "12 Nguyễn Huệ, Bến Nghé, Quận 1, TP. Hồ Chí Minh",
	}

	t.Run("success", func(t *testing.T) {
		up := &upstream{status: http.StatusOK, body: `{"code":200}`}
		cc := newCartClient(t, up.server(t))

		res := cc.SubmitOrder(context.Background(), info, []string{"B1", "B2"})

		assert.Equal(t, model.OutcomeApplied, res.Outcome)
		assert.Equal(t, "/api/pay", up.lastPath)
		assert.Equal(t, "home", up.lastBody["delivery_method"])
		assert.Equal(t, info.Address, up.lastBody["delivery_address"])
		assert.Equal(t, []interface{}{"B1", "B2"}, up.lastBody["selectedProducts"])
	})

	t.Run("failure code", func(t *testing.T) {
		up := &upstream{status: http.StatusOK, body: `{"code":400}`}
		cc := newCartClient(t, up.server(t))

		res := cc.SubmitOrder(context.Background(), info, []string{"B1"})

		assert.Equal(t, model.OutcomeFailed, res.Outcome)
		assert.Error(t, res.Err)
	})
}

func TestCartClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	c, err := NewClient("cart-server", srv.URL, time.Second, nil)
	require.NoError(t, err)
	srv.Close()

	res := NewCartService(c, DefaultPaths()).ForSession(nil).AdjustQuantity(context.Background(), "B1", 1)

	assert.Equal(t, model.OutcomeFailed, res.Outcome)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Message)
}

func TestCartClient_OpenBreakerFails(t *testing.T) {
	up := &upstream{status: http.StatusBadGateway, body: `{}`}
	srv := up.server(t)
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "cart-server",
	})
	c, err := NewClient("cart-server", srv.URL, time.Second, cb)
	require.NoError(t, err)
	cc := NewCartService(c, DefaultPaths()).ForSession(nil)

	first := cc.DeleteItem(context.Background(), "B1")
	assert.ErrorIs(t, first.Err, ErrServerStatus)
	assert.True(t, cb.IsOpen())

	up.lastPath = ""
	second := cc.DeleteItem(context.Background(), "B1")
	assert.Equal(t, model.OutcomeFailed, second.Outcome)
	assert.ErrorIs(t, second.Err, circuitbreaker.ErrCircuitOpen)
	assert.Empty(t, up.lastPath)
}

func TestCartClient_PropagatesRequestIDAndCookies(t *testing.T) {
	var seenCookie string
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if c, err := r.Cookie("session"); err == nil {
			seenCookie = c.Value
		}
		assert.Equal(t, "req-9", r.Header.Get(RequestIDHeader))
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "cart-abc", Path: "/"})
		_, _ = w.Write([]byte(`{"code":200,"total_quantity":1}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient("cart-server", srv.URL, time.Second, nil)
	require.NoError(t, err)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	cc := NewCartService(c, DefaultPaths()).ForSession(jar)

	ctx := logger.WithRequestID(context.Background(), "req-9")
	cc.AddItem(ctx, "B1", "Book", decimal.NewFromInt(1))
	cc.AddItem(ctx, "B1", "Book", decimal.NewFromInt(1))

	assert.Equal(t, 2, calls)
	assert.Equal(t, "cart-abc", seenCookie)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("cart-server", "not a url", time.Second, nil)
	assert.Error(t, err)
}

func TestIsBreakerFailure(t *testing.T) {
	assert.False(t, IsBreakerFailure(context.Canceled))
	assert.True(t, IsBreakerFailure(ErrServerStatus))
	assert.True(t, IsBreakerFailure(context.DeadlineExceeded))
}
