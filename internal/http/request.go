package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
)

// Validator is implemented by request bodies that check themselves after binding.
type Validator interface {
	Validate() error
}

// BindJSON decodes the request body into a new T. When *T implements
// Validator the decoded value is validated before it is returned.
func BindJSON[T any](c *gin.Context) (*T, error) {
	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// bindRequest binds a body for a handler and answers 400 on failure.
// Malformed JSON gets the generic invalid-body message; a validation
// failure names the offending field.
func bindRequest[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := BindJSON[T](c)
	if err == nil {
		return req, true
	}
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.InvalidField(verr)
		return nil, false
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	return nil, false
}
