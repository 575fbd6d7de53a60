package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Upstream operation names, used as metric labels.
const (
	OperationAdd    = "add"
	OperationAdjust = "adjust"
	OperationDelete = "delete"
	OperationSubmit = "submit"
)

// ErrMalformedResponse is returned when a success response lacks required figures.
var ErrMalformedResponse = errors.New("malformed upstream response")

// Paths are the upstream endpoints of the four cart exchanges.
type Paths struct {
	Add    string
	Update string
	Delete string
	Pay    string
}

// DefaultPaths returns the storefront's standard cart endpoints.
func DefaultPaths() Paths {
	return Paths{
		Add:    "/api/add-cart",
		Update: "/api/update-cart",
		Delete: "/api/delete-cart",
		Pay:    "/api/pay",
	}
}

// AddResult is a normalized add-to-cart response.
type AddResult struct {
	Outcome       model.OutcomeStatus
	TotalQuantity int
	Message       string
	Err           error
}

// AdjustResult is a normalized adjust-quantity response.
type AdjustResult struct {
	Outcome      model.OutcomeStatus
	Quantity     int
	LineTotal    decimal.Decimal
	CartQuantity int
	CartPrice    decimal.Decimal
	// CurrentQuantity is the server's last valid quantity on a stock rejection, when reported.
	CurrentQuantity *int
	Message         string
	Err             error
}

// DeleteResult is a normalized delete response.
type DeleteResult struct {
	Outcome      model.OutcomeStatus
	CartQuantity int
	CartPrice    decimal.Decimal
	Message      string
	Err          error
}

// SubmitResult is a normalized checkout submission response.
type SubmitResult struct {
	Outcome model.OutcomeStatus
	Message string
	Err     error
}

// CartClient issues the upstream cart exchanges on behalf of one shopper.
// Implementations never return Go errors: every failure is folded into the
// result's Outcome, with the cause kept in Err for logging.
type CartClient interface {
	AddItem(ctx context.Context, productID, name string, price decimal.Decimal) AddResult
	AdjustQuantity(ctx context.Context, productID string, change int) AdjustResult
	DeleteItem(ctx context.Context, productID string) DeleteResult
	SubmitOrder(ctx context.Context, info model.DeliveryInfo, selected []string) SubmitResult
}

// CartClientFactory binds a CartClient to a shopper's upstream cookies.
type CartClientFactory interface {
	ForSession(jar http.CookieJar) CartClient
}

// CartService is the HTTP CartClientFactory.
type CartService struct {
	client *Client
	paths  Paths
}

// NewCartService creates a cart client factory over c.
func NewCartService(c *Client, paths Paths) *CartService {
	return &CartService{client: c, paths: paths}
}

// ForSession returns a CartClient that sends and stores cookies in jar.
func (s *CartService) ForSession(jar http.CookieJar) CartClient {
	return &sessionCartClient{client: s.client, paths: s.paths, jar: jar}
}

type sessionCartClient struct {
	client *Client
	paths  Paths
	jar    http.CookieJar
}

// AddItem posts {id, name, price}.
func (s *sessionCartClient) AddItem(ctx context.Context, productID, name string, price decimal.Decimal) AddResult {
	resp, err := s.client.PostJSON(ctx, s.jar, OperationAdd, s.paths.Add, dto.NewAddCartRequest(productID, name, price))

	var body dto.AddCartResponse
	code, message, err := decode(resp, err, &body, func() (*int, string) { return body.Code, body.Message })
	if err != nil {
		return AddResult{Outcome: model.OutcomeFailed, Message: message, Err: err}
	}

	switch code {
	case dto.UpstreamCodeOK:
		total, ok := body.Total()
		if !ok {
			return AddResult{Outcome: model.OutcomeFailed, Err: fmt.Errorf("add: %w", ErrMalformedResponse)}
		}
		return AddResult{Outcome: model.OutcomeApplied, TotalQuantity: total}
	case dto.UpstreamCodeUnauthorized:
		return AddResult{Outcome: model.OutcomeAuthRequired, Message: message}
	default:
		return AddResult{Outcome: model.OutcomeFailed, Message: message, Err: unexpectedCode(code)}
	}
}

// AdjustQuantity posts {id, change}.
func (s *sessionCartClient) AdjustQuantity(ctx context.Context, productID string, change int) AdjustResult {
	resp, err := s.client.PostJSON(ctx, s.jar, OperationAdjust, s.paths.Update, dto.UpdateCartRequest{ID: productID, Change: change})

	var body dto.UpdateCartResponse
	code, message, err := decode(resp, err, &body, func() (*int, string) { return body.Code, body.Message })
	if err != nil {
		return AdjustResult{Outcome: model.OutcomeFailed, Message: message, Err: err}
	}

	switch code {
	case dto.UpstreamCodeOK:
		if !body.Complete() {
			return AdjustResult{Outcome: model.OutcomeFailed, Err: fmt.Errorf("adjust: %w", ErrMalformedResponse)}
		}
		return AdjustResult{
			Outcome:      model.OutcomeApplied,
			Quantity:     *body.UpdatedQuantity,
			LineTotal:    *body.UpdatedTotal,
			CartQuantity: *body.CartTotalQuantity,
			CartPrice:    *body.CartTotalPrice,
		}
	case dto.UpstreamCodeRejected:
		return AdjustResult{Outcome: model.OutcomeRejected, CurrentQuantity: body.CurrentQuantity, Message: message}
	case dto.UpstreamCodeUnauthorized:
		return AdjustResult{Outcome: model.OutcomeAuthRequired, Message: message}
	default:
		return AdjustResult{Outcome: model.OutcomeFailed, Message: message, Err: unexpectedCode(code)}
	}
}

// DeleteItem posts {id}. The delete response may omit "code"; the HTTP status decides.
func (s *sessionCartClient) DeleteItem(ctx context.Context, productID string) DeleteResult {
	resp, err := s.client.PostJSON(ctx, s.jar, OperationDelete, s.paths.Delete, dto.DeleteCartRequest{ID: productID})

	var body dto.DeleteCartResponse
	code, message, err := decode(resp, err, &body, func() (*int, string) { return body.Code, body.Message })
	if err != nil {
		return DeleteResult{Outcome: model.OutcomeFailed, Message: message, Err: err}
	}

	switch {
	case code == dto.UpstreamCodeUnauthorized:
		return DeleteResult{Outcome: model.OutcomeAuthRequired, Message: message}
	case code < 200 || code > 299 || !isSuccess(resp.StatusCode):
		return DeleteResult{Outcome: model.OutcomeFailed, Message: message, Err: unexpectedCode(code)}
	case body.CartTotalQuantity == nil || body.CartTotalPrice == nil:
		return DeleteResult{Outcome: model.OutcomeFailed, Err: fmt.Errorf("delete: %w", ErrMalformedResponse)}
	default:
		return DeleteResult{
			Outcome:      model.OutcomeApplied,
			CartQuantity: *body.CartTotalQuantity,
			CartPrice:    *body.CartTotalPrice,
		}
	}
}

// SubmitOrder posts the saved delivery info merged with the selected ids.
func (s *sessionCartClient) SubmitOrder(ctx context.Context, info model.DeliveryInfo, selected []string) SubmitResult {
	payload := dto.PayRequest{
		DeliveryMethod:   string(info.Method),
		PaymentMethod:    info.PaymentMethod,
		Phone:            info.Phone,
		Email:            info.Email,
		DeliveryAddress:  info.Address,
		SelectedProducts: selected,
	}
	resp, err := s.client.PostJSON(ctx, s.jar, OperationSubmit, s.paths.Pay, payload)

	var body dto.PayResponse
	code, message, err := decode(resp, err, &body, func() (*int, string) { return body.Code, body.Message })
	if err != nil {
		return SubmitResult{Outcome: model.OutcomeFailed, Message: message, Err: err}
	}

	switch code {
	case dto.UpstreamCodeOK:
		return SubmitResult{Outcome: model.OutcomeApplied}
	case dto.UpstreamCodeUnauthorized:
		return SubmitResult{Outcome: model.OutcomeAuthRequired, Message: message}
	default:
		return SubmitResult{Outcome: model.OutcomeFailed, Message: message, Err: unexpectedCode(code)}
	}
}

// decode unmarshals resp into body and resolves the effective result code:
// the body's "code" when present, otherwise the HTTP status. A redirect is
// reported as 401. The message is recovered from error bodies when possible.
func decode(resp *Response, reqErr error, body interface{}, fields func() (*int, string)) (int, string, error) {
	if resp == nil {
		if reqErr == nil {
			reqErr = ErrMalformedResponse
		}
		return 0, "", reqErr
	}
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return dto.UpstreamCodeUnauthorized, "", nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = json.Unmarshal(resp.Body, body)
		_, message := fields()
		return dto.UpstreamCodeUnauthorized, message, nil
	}

	if err := json.Unmarshal(resp.Body, body); err != nil {
		if reqErr != nil {
			return 0, "", reqErr
		}
		return 0, "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	code, message := fields()
	if reqErr != nil {
		return 0, message, reqErr
	}
	if code != nil {
		return *code, message, nil
	}
	return resp.StatusCode, message, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func unexpectedCode(code int) error {
	return fmt.Errorf("unexpected upstream code %d", code)
}
