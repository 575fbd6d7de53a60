package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/rs/zerolog"
)

// CreateSession handles POST /api/session requests.
//
// @Summary      Create session
// @Description  Starts a cart session and returns the bearer token that identifies it
// @Tags         Session
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session created"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	s, err := h.sessions.Create()
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(s.ID)
	if err != nil {
		h.sessions.Remove(s.ID)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set(middleware.SessionIDKey, s.ID)
	zerolog.Ctx(c.Request.Context()).Info().Str("session_id", s.ID).Msg("Session created")
	middleware.AuditLog(h.audit, c, middleware.ActionCreateSession, "Session created", nil)

	builder.SuccessCreated(dto.SessionResponse{
		SessionID: s.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// DeleteSession handles DELETE /api/session requests.
//
// @Summary      End session
// @Description  Drops the session's cart engine state. The token stops working immediately.
// @Tags         Session
// @Param        Authorization header string true "Bearer session token"
// @Success      204 "Session ended"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid session token"
// @Security     BearerAuth
// @Router       /api/session [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	h.sessions.Remove(s.ID)
	c.Status(http.StatusNoContent)
}
