package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/rs/zerolog"
)

// Timeout bounds the request context by d. Upstream cart calls and store
// writes observe the deadline while the handler keeps running on the
// request goroutine, so a session lock is never left with an abandoned
// handler. A request whose deadline passed without a response ends in 504.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		zerolog.Ctx(ctx).Warn().
			Str("session_id", GetSessionID(c)).
			Str("path", c.FullPath()).
			Dur("timeout", d).
			Msg("Request deadline exceeded")

		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
	}
}
