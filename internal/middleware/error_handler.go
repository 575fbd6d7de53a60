package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/rs/zerolog"
)

// ErrorHandler answers requests that ended with an error attached through
// c.Error and no response. Deadline errors become 504, an open circuit
// 503, anything else 500. Every attached error is logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last().Err
		zerolog.Ctx(c.Request.Context()).Error().
			Strs("errors", c.Errors.Errors()).
			Str("session_id", GetSessionID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		status, key := classifyError(last)
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(GetRequestID(c)))
	}
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyInternalError
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
