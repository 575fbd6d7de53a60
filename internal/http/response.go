package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/middleware"
)

// ResponseBuilder writes the JSON envelopes every route answers with.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a ResponseBuilder bound to c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends data with 200.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends data with 201.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the message registered under messageKey, translated
// to the request locale. err, when set, is attached to the context so the
// error handler logs it.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	msg := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, msg, nil, err)
}

// ErrorWithMessage aborts with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, message, nil, err)
}

// InvalidField aborts with 400 for a body that decoded but failed validation.
func (b *ResponseBuilder) InvalidField(verr *dto.ValidationError) {
	b.abort(http.StatusBadRequest, verr.Error(), map[string]string{"field": verr.Field}, verr)
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	resp.Details = details
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// Action sends the outcome of a cart, delivery or checkout action together
// with the re-rendered state. The status code follows the outcome class.
func (b *ResponseBuilder) Action(outcome model.Outcome, cart *model.CartView, delivery *model.DeliveryView) {
	b.c.Set(middleware.OutcomeKey, string(outcome.Status))
	b.Success(dto.StatusForOutcome(outcome.Status), dto.ActionResponse{
		Status:   outcome.Status,
		Notice:   translateNotice(outcome.Notice, i18n.GetLocale(b.c)),
		Redirect: outcome.Redirect,
		Cart:     cart,
		Delivery: delivery,
	})
}

// translateNotice renders a notice in the request locale. Upstream
// messages carried in Message are passed through untouched.
func translateNotice(n *model.Notice, locale string) *dto.NoticeResponse {
	if n == nil {
		return nil
	}
	text := n.Message
	if text == "" {
		text = i18n.GetTranslator().TranslateField(n.Key, n.Field, locale)
	}
	return &dto.NoticeResponse{
		Level:    n.Level,
		Blocking: n.Blocking,
		Key:      n.Key,
		Text:     text,
		Field:    n.Field,
	}
}
