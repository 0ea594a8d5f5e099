package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/request"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
	"github.com/prasety/kasirku-api/internal/presentation/http/middleware"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List returns catalog items with optional name search.
func (h *ItemHandler) List(c *gin.Context) {
	var filter request.ItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Parameter tidak valid")
		return
	}

	params := &domainRepo.ItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	result, err := h.itemService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Daftar barang", result)
}

// Get returns one catalog item.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Barang", item)
}

// Create validates and stores a new catalog item.
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req.Name, req.BuyingPrice, req.SellingPrice)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Barang berhasil disimpan", item)
}

// Update replaces an item's name and prices.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req.Name, req.BuyingPrice, req.SellingPrice)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Barang berhasil diperbarui", item)
}

// Delete removes an item from the catalog.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Barang berhasil dihapus", nil)
}

// AddToCart drops a catalog item into the register's cart at its stored
// selling price.
func (h *ItemHandler) AddToCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.itemService.AddToCart(c.Request.Context(), middleware.RegisterID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result.Message, result)
}
