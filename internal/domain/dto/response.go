package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInternal       = "internal_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeNotFound       = "not_found"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeConflict       = "conflict"
	ErrCodeTimeout        = "timeout"
	ErrCodeUnprocessable  = "unprocessable"
	ErrCodeBadGateway     = "bad_gateway" // upstream cart server unreachable
	ErrCodeUnavailable    = "service_unavailable"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeInvalidRequest,
	http.StatusUnauthorized:        ErrCodeUnauthorized,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusRequestTimeout:      ErrCodeTimeout,
	http.StatusConflict:            ErrCodeConflict,
	http.StatusUnprocessableEntity: ErrCodeUnprocessable,
	http.StatusTooManyRequests:     ErrCodeRateLimit,
	http.StatusBadGateway:          ErrCodeBadGateway,
	http.StatusServiceUnavailable:  ErrCodeUnavailable,
	http.StatusGatewayTimeout:      ErrCodeTimeout,
}

// SuccessResponse is the envelope for non-action payloads.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the body of every non-outcome error.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"id: must not be empty"`
	Details   map[string]string `json:"details,omitempty"` // e.g. the offending field
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, Message: message, Timestamp: time.Now()}
}

func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus picks the error code for status; unknown statuses are internal errors.
func ErrCodeFromStatus(status int) string {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}

// NoticeResponse is a translated user-facing notice.
type NoticeResponse struct {
	Level    model.NoticeLevel `json:"level" example:"error"`
	Blocking bool              `json:"blocking"`
	Key      string            `json:"key,omitempty" example:"notice.insufficient_stock"`
	Text     string            `json:"text" example:"Số lượng sản phẩm trong kho không đủ"`
	Field    string            `json:"field,omitempty" example:"street"`
} // @name NoticeResponse

// ActionResponse is returned by every cart, delivery and checkout action.
//
// @Description Normalized action outcome plus the re-rendered state
type ActionResponse struct {
	Status   model.OutcomeStatus `json:"status" example:"applied"`
	Notice   *NoticeResponse     `json:"notice,omitempty"`
	Redirect string              `json:"redirect,omitempty" example:"/user-login"`
	Cart     *model.CartView     `json:"cart,omitempty"`
	Delivery *model.DeliveryView `json:"delivery,omitempty"`
} // @name ActionResponse

// StatusForOutcome maps an outcome to its HTTP status code.
func StatusForOutcome(status model.OutcomeStatus) int {
	switch status {
	case model.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case model.OutcomeRejected:
		return http.StatusConflict
	case model.OutcomeAuthRequired:
		return http.StatusUnauthorized
	case model.OutcomeFailed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// SessionResponse is returned when a cart session is issued.
//
// @Description Issued cart session
type SessionResponse struct {
	SessionID string    `json:"session_id" example:"2c1f7a7e-4b9e-4a55-9d83-5f3d0b2ad0e1"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2025-01-28T11:00:00Z"`
} // @name SessionResponse

// AuditLogPage is one page of the audit log.
//
// @Description Audit log query result
type AuditLogPage struct {
	Logs  []model.LogEntry `json:"logs"`
	Total int64            `json:"total" example:"42"`
	Limit int              `json:"limit" example:"100"`
	Skip  int              `json:"skip" example:"0"`
} // @name AuditLogPage
