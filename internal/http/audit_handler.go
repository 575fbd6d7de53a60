package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/guttosm/cart-sync/internal/service"
	"github.com/rs/zerolog"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

// AuditLogHandler serves the operator view of the audit log.
type AuditLogHandler struct {
	loggingService service.LoggingService
}

// NewAuditLogHandler creates a new AuditLogHandler instance.
func NewAuditLogHandler(loggingService service.LoggingService) *AuditLogHandler {
	return &AuditLogHandler{loggingService: loggingService}
}

// ListAuditLogs handles GET /api/admin/audit-logs requests.
//
// @Summary      List audit logs
// @Description  Returns audit and request log entries, newest first
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Operator API key"
// @Param        request_id query string false "Request id"
// @Param        session_id query string false "Session id"
// @Param        action_type query string false "Action type, e.g. add_item or checkout"
// @Param        outcome query string false "Action outcome, e.g. rejected"
// @Param        level query string false "Log level"
// @Param        start_time query string false "RFC 3339 lower bound"
// @Param        end_time query string false "RFC 3339 upper bound"
// @Param        limit query int false "Page size (default 100, max 1000)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogPage} "Audit log page"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/admin/audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := parseLogQuery(c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx := c.Request.Context()
	logs, err := h.loggingService.QueryLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.loggingService.CountLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if logs == nil {
		logs = []model.LogEntry{}
	}

	zerolog.Ctx(ctx).Info().
		Str("operator", middleware.GetOperator(c)).
		Str("action_type", opts.ActionType).
		Str("session_id", opts.SessionID).
		Int64("total", total).
		Msg("Audit log queried")

	builder.SuccessOK(dto.AuditLogPage{
		Logs:  logs,
		Total: total,
		Limit: opts.Limit,
		Skip:  opts.Skip,
	})
}

func parseLogQuery(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID:  c.Query("request_id"),
		SessionID:  c.Query("session_id"),
		ActionType: c.Query("action_type"),
		Outcome:    c.Query("outcome"),
		Level:      c.Query("level"),
		Limit:      defaultAuditLimit,
	}

	if opts.Outcome != "" && !model.OutcomeStatus(opts.Outcome).Valid() {
		return opts, &dto.ValidationError{Field: "outcome", Message: "must be one of applied, superseded, invalid, rejected, auth_required, failed"}
	}

	var err error
	if opts.StartTime, err = parseTimeParam(c, "start_time"); err != nil {
		return opts, err
	}
	if opts.EndTime, err = parseTimeParam(c, "end_time"); err != nil {
		return opts, err
	}
	if s := c.Query("limit"); s != "" {
		if opts.Limit, err = strconv.Atoi(s); err != nil || opts.Limit <= 0 {
			return opts, &dto.ValidationError{Field: "limit", Message: "must be a positive integer"}
		}
		opts.Limit = min(opts.Limit, maxAuditLimit)
	}
	if s := c.Query("skip"); s != "" {
		if opts.Skip, err = strconv.Atoi(s); err != nil || opts.Skip < 0 {
			return opts, &dto.ValidationError{Field: "skip", Message: "must not be negative"}
		}
	}
	return opts, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, &dto.ValidationError{Field: name, Message: "must be an RFC 3339 timestamp"}
	}
	return &t, nil
}
