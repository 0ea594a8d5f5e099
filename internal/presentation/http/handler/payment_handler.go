package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
	"github.com/prasety/kasirku-api/internal/presentation/http/middleware"
)

// PaymentHandler handles payment preview requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Preview computes the payment state for the cash currently keyed in.
// Nothing is stored; the preview is recomputed per request.
func (h *PaymentHandler) Preview(c *gin.Context) {
	state := h.paymentService.Preview(c.Request.Context(), middleware.RegisterID(c), c.Query("tendered"))
	response.OK(c, state.Hint, state)
}
