package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/request"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
	"github.com/prasety/kasirku-api/internal/presentation/http/middleware"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the register's current cart.
func (h *CartHandler) Get(c *gin.Context) {
	view := h.cartService.Get(c.Request.Context(), middleware.RegisterID(c))
	response.OK(c, "Keranjang", view)
}

// AddLine validates and adds a candidate line to the cart.
func (h *CartHandler) AddLine(c *gin.Context) {
	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	result, err := h.cartService.Add(c.Request.Context(), middleware.RegisterID(c), req.Name, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result.Message, result)
}

// IncreaseQuantity bumps a line's quantity by one.
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	view := h.cartService.IncreaseQuantity(c.Request.Context(), middleware.RegisterID(c), c.Param("id"))
	response.OK(c, "Keranjang", view)
}

// DecreaseQuantity lowers a line's quantity by one.
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	view := h.cartService.DecreaseQuantity(c.Request.Context(), middleware.RegisterID(c), c.Param("id"))
	response.OK(c, "Keranjang", view)
}

// RequestRemove issues a confirmation for removing one line.
func (h *CartHandler) RequestRemove(c *gin.Context) {
	confirmation, err := h.cartService.RequestRemoveLine(c.Request.Context(), middleware.RegisterID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, confirmation.Message, confirmation)
}

// RequestClear issues a confirmation for emptying the cart.
func (h *CartHandler) RequestClear(c *gin.Context) {
	confirmation, err := h.cartService.RequestClear(c.Request.Context(), middleware.RegisterID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, confirmation.Message, confirmation)
}

// Confirm executes a pending destructive cart action.
func (h *CartHandler) Confirm(c *gin.Context) {
	var req request.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	token, ok := parseToken(c, req.Token)
	if !ok {
		return
	}

	outcome, err := h.cartService.Confirm(c.Request.Context(), middleware.RegisterID(c), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, outcome.Message, outcome)
}
