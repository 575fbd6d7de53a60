package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/guttosm/cart-sync/internal/service"
)

// Handler provides the HTTP handlers of the cart, delivery and checkout routes.
type Handler struct {
	sessions service.SessionManager
	tokens   service.SessionTokenService
	audit    *middleware.AsyncLogger
}

// NewHandler creates a new Handler. audit may be nil.
func NewHandler(sessions service.SessionManager, tokens service.SessionTokenService, audit *middleware.AsyncLogger) *Handler {
	return &Handler{
		sessions: sessions,
		tokens:   tokens,
		audit:    audit,
	}
}

// currentSession returns the session resolved by the session middleware,
// writing a 401 when there is none.
func currentSession(c *gin.Context, builder *ResponseBuilder) (*service.Session, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, nil)
		return nil, false
	}
	return s, true
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the rendered cart: lines, counter, cart and selection summaries
// @Tags         Cart
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=model.CartView} "Cart view"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid session token"
// @Security     BearerAuth
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(s.View())
}

// ReloadCart handles PUT /api/cart requests.
//
// @Summary      Reload cart
// @Description  Hydrates the cart from the server-rendered listing on page load. The selection and any saved delivery info are cleared.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body dto.ReloadCartRequest true "Cart listing"
// @Success      200 {object} dto.SuccessResponse{data=model.CartView} "Cart view"
// @Failure      400 {object} dto.ErrorResponse "Invalid listing"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid session token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/cart [put]
func (h *Handler) ReloadCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.ReloadCartRequest](c, builder)
	if !ok {
		return
	}

	view, err := s.Reload(c.Request.Context(), req.ToCartLines())
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionReloadCart, "Cart reload failed", err, nil)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionReloadCart, "Cart reloaded", map[string]interface{}{
		"lines":   len(view.Lines),
		"counter": view.Counter,
	})
	builder.SuccessOK(view)
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add item
// @Description  Adds one unit of a product to the cart through the upstream cart server
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        Idempotency-Key header string false "Replays the first response of a retried request"
// @Param        request body dto.AddItemRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Item added"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.SuccessResponse{data=dto.ActionResponse} "Shopper must sign in"
// @Failure      409 {object} dto.SuccessResponse{data=dto.ActionResponse} "Rejected by the cart server"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ActionResponse} "Cart server unreachable"
// @Security     BearerAuth
// @Router       /api/cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.AddItemRequest](c, builder)
	if !ok {
		return
	}

	outcome, err := s.AddItem(c.Request.Context(), req.ProductID, req.Name, req.Price)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	view := s.View()
	builder.Action(outcome, &view, nil)
}

// AdjustQuantity handles POST /api/cart/items/:id/adjust requests.
//
// @Summary      Adjust quantity
// @Description  Moves a line's quantity by +1 or -1. Reaching zero removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        Idempotency-Key header string false "Replays the first response of a retried request"
// @Param        id path string true "Product id"
// @Param        request body dto.AdjustQuantityRequest true "Quantity change"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Quantity updated or superseded"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      409 {object} dto.SuccessResponse{data=dto.ActionResponse} "Insufficient stock"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Unknown line or invalid change"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ActionResponse} "Cart server unreachable"
// @Security     BearerAuth
// @Router       /api/cart/items/{id}/adjust [post]
func (h *Handler) AdjustQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.AdjustQuantityRequest](c, builder)
	if !ok {
		return
	}

	outcome, err := s.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Change)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	view := s.View()
	builder.Action(outcome, &view, nil)
}

// DeleteItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Delete item
// @Description  Removes a line from the cart
// @Tags         Cart
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        Idempotency-Key header string false "Replays the first response of a retried request"
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Item removed"
// @Failure      409 {object} dto.SuccessResponse{data=dto.ActionResponse} "Rejected by the cart server"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Unknown line"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ActionResponse} "Cart server unreachable"
// @Security     BearerAuth
// @Router       /api/cart/items/{id} [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}

	outcome, err := s.DeleteItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	view := s.View()
	builder.Action(outcome, &view, nil)
}

// ToggleLine handles PUT /api/cart/items/:id/selection requests.
//
// @Summary      Select line
// @Description  Marks or unmarks a line for checkout
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        id path string true "Product id"
// @Param        request body dto.SelectionRequest true "Selection flag"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Selection updated"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Unknown line"
// @Security     BearerAuth
// @Router       /api/cart/items/{id}/selection [put]
func (h *Handler) ToggleLine(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.SelectionRequest](c, builder)
	if !ok {
		return
	}

	outcome, err := s.ToggleLine(c.Request.Context(), c.Param("id"), *req.Selected)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	view := s.View()
	builder.Action(outcome, &view, nil)
}

// ToggleAll handles PUT /api/cart/selection requests.
//
// @Summary      Select all
// @Description  Marks or unmarks every line for checkout
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body dto.SelectionRequest true "Selection flag"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Selection updated"
// @Security     BearerAuth
// @Router       /api/cart/selection [put]
func (h *Handler) ToggleAll(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.SelectionRequest](c, builder)
	if !ok {
		return
	}

	outcome, err := s.ToggleAll(c.Request.Context(), *req.Selected)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	view := s.View()
	builder.Action(outcome, &view, nil)
}
