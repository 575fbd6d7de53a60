package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/i18n"
)

const (
	// APIKeyHeader carries the operator key on admin routes.
	APIKeyHeader = "X-API-Key"
	// OperatorKey is the gin context key holding the fingerprint of the
	// operator key that authenticated the request.
	OperatorKey = "operator"
)

// APIKeyAuth guards the admin routes with the configured operator keys.
// Keys are read from the X-API-Key header only. With no keys configured
// every request is rejected.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	hashes := make([][sha256.Size]byte, len(validKeys))
	for i, k := range validKeys {
		hashes[i] = sha256.Sum256([]byte(k))
	}

	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		sum := sha256.Sum256([]byte(key))
		if !matchesAny(sum, hashes) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(OperatorKey, hex.EncodeToString(sum[:4]))
		c.Next()
	}
}

// matchesAny compares against every key so the timing does not reveal
// which one matched.
func matchesAny(sum [sha256.Size]byte, hashes [][sha256.Size]byte) bool {
	found := 0
	for i := range hashes {
		found |= subtle.ConstantTimeCompare(sum[:], hashes[i][:])
	}
	return found == 1
}

// GetOperator returns the key fingerprint set by APIKeyAuth, or "".
func GetOperator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}
