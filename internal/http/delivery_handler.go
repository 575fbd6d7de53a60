package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/domain/dto"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/service"
)

// GetDelivery handles GET /api/delivery requests.
//
// @Summary      Get delivery
// @Description  Returns the delivery workflow state and the saved delivery info, if any
// @Tags         Delivery
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=model.DeliveryView} "Delivery view"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid session token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/delivery [get]
func (h *Handler) GetDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	view, err := s.DeliveryView(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(view)
}

// OpenDelivery handles POST /api/delivery/open requests.
//
// @Summary      Open delivery form
// @Description  Opens the delivery workflow. Opening an open workflow changes nothing.
// @Tags         Delivery
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Workflow opened"
// @Security     BearerAuth
// @Router       /api/delivery/open [post]
func (h *Handler) OpenDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	h.respondDelivery(c, builder, s, s.OpenDelivery())
}

// SelectDeliveryMethod handles POST /api/delivery/method requests.
//
// @Summary      Select delivery method
// @Description  Chooses home delivery or in-store pickup and reveals that method's form
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body dto.SelectMethodRequest true "Delivery method"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Method selected"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Workflow closed or unknown method"
// @Security     BearerAuth
// @Router       /api/delivery/method [post]
func (h *Handler) SelectDeliveryMethod(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.SelectMethodRequest](c, builder)
	if !ok {
		return
	}
	h.respondDelivery(c, builder, s, s.SelectDeliveryMethod(req.Method))
}

// UpdateDeliveryForm handles PUT /api/delivery/form requests.
//
// @Summary      Update delivery form
// @Description  Stores the in-progress fields of a method's form. Each method keeps its own form.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body dto.DeliveryFormRequest true "Form fields"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Form updated"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Workflow closed or unknown method"
// @Security     BearerAuth
// @Router       /api/delivery/form [put]
func (h *Handler) UpdateDeliveryForm(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.DeliveryFormRequest](c, builder)
	if !ok {
		return
	}
	h.respondDelivery(c, builder, s, s.UpdateDeliveryForm(req.Method, req.Form))
}

// ConfirmDelivery handles POST /api/delivery/confirm requests.
//
// @Summary      Confirm delivery
// @Description  Validates the selected method's form and saves the delivery info. A body, when sent, replaces the in-progress form first.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        request body dto.DeliveryFormRequest false "Form fields"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Delivery info saved"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Missing method, field or payment option"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/delivery/confirm [post]
func (h *Handler) ConfirmDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}

	var (
		method string
		form   *model.DeliveryForm
	)
	if c.Request.ContentLength != 0 {
		req, ok := bindRequest[dto.DeliveryFormRequest](c, builder)
		if !ok {
			return
		}
		method, form = req.Method, &req.Form
	}

	outcome, err := s.ConfirmDelivery(c.Request.Context(), method, form)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	h.respondDelivery(c, builder, s, outcome)
}

// CancelDelivery handles POST /api/delivery/cancel requests.
//
// @Summary      Cancel delivery form
// @Description  Closes the workflow and discards the in-progress forms. Saved delivery info is kept.
// @Tags         Delivery
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Workflow closed"
// @Security     BearerAuth
// @Router       /api/delivery/cancel [post]
func (h *Handler) CancelDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}
	h.respondDelivery(c, builder, s, s.CancelDelivery())
}

func (h *Handler) respondDelivery(c *gin.Context, builder *ResponseBuilder, s *service.Session, outcome model.Outcome) {
	view, err := s.DeliveryView(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.Action(outcome, nil, &view)
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Checkout
// @Description  Submits the selected lines with the saved delivery info. Requires a non-empty selection and confirmed delivery info.
// @Tags         Checkout
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        Idempotency-Key header string false "Replays the first response of a retried request"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActionResponse} "Order placed"
// @Failure      401 {object} dto.SuccessResponse{data=dto.ActionResponse} "Shopper must sign in"
// @Failure      409 {object} dto.SuccessResponse{data=dto.ActionResponse} "Rejected by the cart server"
// @Failure      422 {object} dto.SuccessResponse{data=dto.ActionResponse} "Nothing selected or delivery info missing"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ActionResponse} "Cart server unreachable"
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := currentSession(c, builder)
	if !ok {
		return
	}

	outcome, err := s.Checkout(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	cart := s.View()
	delivery, err := s.DeliveryView(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.Action(outcome, &cart, &delivery)
}
