package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/request"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
	"github.com/prasety/kasirku-api/internal/presentation/http/middleware"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// TransactionHandler handles sale finalization and history requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Finalize freezes the current cart and payment into a transaction record.
// The cart stays intact until the operator confirms a new transaction.
func (h *TransactionHandler) Finalize(c *gin.Context) {
	var req request.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	transaction, err := h.transactionService.Finalize(c.Request.Context(), middleware.RegisterID(c), req.Tendered)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaksi berhasil", transaction)
}

// Close drives the two-step new-transaction reset. Without a token it
// issues the confirmation; with one it closes the record, books the sale
// into earnings, and empties the cart.
func (h *TransactionHandler) Close(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// The body is optional: no token means "issue a confirmation".
	var req request.CloseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Permintaan tidak valid")
		return
	}

	registerID := middleware.RegisterID(c)

	if req.Token == "" {
		confirmation, err := h.transactionService.RequestClose(c.Request.Context(), registerID, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, confirmation.Message, confirmation)
		return
	}

	token, ok := parseToken(c, req.Token)
	if !ok {
		return
	}

	outcome, err := h.transactionService.ConfirmClose(c.Request.Context(), registerID, token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaksi baru dimulai", outcome)
}

// Get returns one transaction with its lines.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaksi", transaction)
}

// List returns the register's transaction history, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Parameter tidak valid")
		return
	}

	params := &domainRepo.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		RegisterID: middleware.RegisterID(c),
	}

	if filter.From != "" {
		if from, err := time.Parse("2006-01-02", filter.From); err == nil {
			params.From = &from
		}
	}
	if filter.To != "" {
		if to, err := time.Parse("2006-01-02", filter.To); err == nil {
			// Inclusive upper bound: the whole day counts.
			to = to.AddDate(0, 0, 1)
			params.To = &to
		}
	}

	result, err := h.transactionService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Riwayat transaksi", result)
}
