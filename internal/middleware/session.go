package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/service"
)

const (
	// SessionIDKey is the gin context key holding the authenticated session id.
	SessionIDKey = "session_id"
	// SessionKey is the gin context key holding the *service.Session.
	SessionKey = "session"
)

// SessionAuth returns a middleware that resolves the Bearer session token
// to a live cart session. Requests without a valid token, or whose session
// has expired, are rejected with 401.
func SessionAuth(tokens service.SessionTokenService, sessions service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		sessionID, err := tokens.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		session, err := sessions.Get(sessionID)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(SessionKey, session)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}

// GetSession returns the session set by SessionAuth, or nil.
func GetSession(c *gin.Context) *service.Session {
	if v, exists := c.Get(SessionKey); exists {
		if s, ok := v.(*service.Session); ok {
			return s
		}
	}
	return nil
}

// GetSessionID returns the session id set by SessionAuth, or "".
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
