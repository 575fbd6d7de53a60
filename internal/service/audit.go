package service

import (
	"context"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/logger"
)

// Audited cart actions.
const (
	ActionAddItem         = "add_item"
	ActionAdjustQuantity  = "adjust_quantity"
	ActionDeleteItem      = "delete_item"
	ActionConfirmDelivery = "confirm_delivery"
	ActionCheckout        = "checkout"
)

// AuditRecorder receives audit entries for cart actions.
// Implementations must not block the caller.
type AuditRecorder interface {
	Record(entry *model.LogEntry)
}

type auditor struct {
	recorder  AuditRecorder
	sessionID string
}

func (a auditor) record(ctx context.Context, action string, outcome model.Outcome, fields map[string]interface{}) {
	if a.recorder == nil {
		return
	}

	level := "info"
	switch outcome.Status {
	case model.OutcomeFailed:
		level = "error"
	case model.OutcomeRejected, model.OutcomeInvalid, model.OutcomeAuthRequired:
		level = "warn"
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    "cart action " + action,
		RequestID:  logger.RequestID(ctx),
		SessionID:  a.sessionID,
		ActionType: action,
		Outcome:    string(outcome.Status),
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	a.recorder.Record(entry)
}
