package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/request"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// EarningHandler handles income ledger HTTP requests
type EarningHandler struct {
	earningService *service.EarningService
}

// NewEarningHandler creates a new earning handler
func NewEarningHandler(earningService *service.EarningService) *EarningHandler {
	return &EarningHandler{earningService: earningService}
}

// Add records a manual income entry.
func (h *EarningHandler) Add(c *gin.Context) {
	var req request.AddEarningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	earning, err := h.earningService.AddManual(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Pemasukan berhasil dicatat", earning)
}

// List returns income entries, newest first.
func (h *EarningHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Parameter tidak valid")
		return
	}

	result, err := h.earningService.List(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Daftar pemasukan", result)
}

// Summary returns the weekly and monthly income totals.
func (h *EarningHandler) Summary(c *gin.Context) {
	summary, err := h.earningService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Ringkasan pemasukan", summary)
}
