package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/model"
)

// Audited request-level actions. Cart mutations, delivery and checkout are
// audited by the session itself.
const (
	ActionCreateSession = "create_session"
	ActionReloadCart    = "reload_cart"
)

// AuditLog records a session action for audit purposes.
func AuditLog(sink *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, "info", actionType, message, fields)
	sink.Record(entry)
}

// AuditLogError records a failed session action for audit purposes.
func AuditLogError(sink *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Record(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		SessionID:  GetSessionID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
