package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/rs/zerolog"
)

// OutcomeKey is the gin context key where action handlers leave the
// outcome status so the request log can carry it.
const OutcomeKey = "outcome"

// RequestLogger writes one log line per request and mirrors it to sink
// when sink is non-nil. The path is the route template, so every product
// shares one path. Requests under a skip prefix are only logged to the
// console at debug level.
func RequestLogger(sink *AsyncLogger, skip ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := &model.LogEntry{
			Timestamp:  start,
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			SessionID:  GetSessionID(c),
			Method:     c.Request.Method,
			Path:       routePath(c),
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Outcome:    c.GetString(OutcomeKey),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		level := levelForStatus(entry.StatusCode)
		skipped := hasAnyPrefix(c.Request.URL.Path, skip)
		if skipped {
			level = zerolog.DebugLevel
		}
		entry.Level = level.String()

		event := zerolog.Ctx(c.Request.Context()).WithLevel(level).
			Str("session_id", entry.SessionID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP)
		if entry.Outcome != "" {
			event = event.Str("outcome", entry.Outcome)
		}
		event.Msg(entry.Message)

		if !skipped {
			sink.Record(entry)
		}
	}
}

func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
