package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a stored response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute
)

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

func DefaultIdempotencyConfig() IdempotencyConfig {
	return NewIdempotencyConfig(IdempotencyKeyTTL, defaultIdempotencyEntries)
}

// NewIdempotencyConfig returns an enabled configuration with its own cache.
func NewIdempotencyConfig(ttl time.Duration, maxEntries int) IdempotencyConfig {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(ttl, maxEntries),
		TTL:     ttl,
		Enabled: true,
	}
}

// Stop releases the cache sweep goroutine.
func (cfg IdempotencyConfig) Stop() {
	if cfg.Cache != nil {
		cfg.Cache.Stop()
	}
}

var idempotentMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Idempotency replays the stored response of a retried cart action that
// carries the same Idempotency-Key. Keys are scoped per session, so it must
// run after SessionAuth. Processed outcomes (2xx, 409, 422) are stored; auth
// and infrastructure errors are not, so the client can retry them.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !idempotentMethods[c.Request.Method] {
			c.Next()
			return
		}

		requestKey := requestFingerprint(key, GetSessionID(c), c.Request)
		if stored, ok := cfg.Cache.Get(requestKey); ok {
			header := c.Writer.Header()
			for name, values := range stored.Header {
				header[name] = values
			}
			header.Set(IdempotencyReplayedHeader, "true")
			c.Data(stored.Status, stored.Header.Get("Content-Type"), stored.Body)
			c.Abort()
			return
		}

		tee := &teeWriter{ResponseWriter: c.Writer}
		c.Writer = tee
		c.Next()

		if status := tee.Status(); replayable(status) {
			cfg.Cache.Set(requestKey, &storedResponse{
				Status: status,
				Header: replayHeader(tee.Header()),
				Body:   bytes.Clone(tee.body.Bytes()),
			})
		}
	}
}

// perResponseHeaders are recomputed for every response and never replayed.
var perResponseHeaders = []string{
	RequestIDHeader,
	"Content-Encoding",
	"Content-Length",
	"Vary",
	"X-Ratelimit-Limit",
	"X-Ratelimit-Remaining",
}

func replayHeader(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range perResponseHeaders {
		out.Del(name)
	}
	return out
}

func replayable(status int) bool {
	return (status >= 200 && status < 300) ||
		status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity
}

// requestFingerprint hashes the key together with the session, route and body.
func requestFingerprint(idempotencyKey, sessionID string, req *http.Request) string {
	h := sha256.New()
	for _, part := range []string{idempotencyKey, sessionID, req.Method, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}
	return hex.EncodeToString(h.Sum(nil))
}

type teeWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
