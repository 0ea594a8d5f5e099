package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	"github.com/prasety/kasirku-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt rendering and thermal printing requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status.
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Status printer", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer. The composed receipt comes
// back as JSON so the result is visible without hardware.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Success(c, http.StatusOK, "Printer tidak tersedia, struk ditampilkan sebagai data", receipt)
		return
	}
	response.OK(c, "Tes cetak terkirim", receipt)
}

// Receipt returns the composed receipt for a transaction as JSON.
func (h *PrinterHandler) Receipt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.printerService.Receipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Struk", receipt)
}

// ReceiptPDF streams the transaction's receipt as a PDF download.
func (h *PrinterHandler) ReceiptPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.printerService.ReceiptPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Print sends the transaction's receipt to the thermal printer.
func (h *PrinterHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.printerService.PrintTransactionReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.Success(c, http.StatusOK, "Printer tidak tersedia, struk ditampilkan sebagai data", receipt)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Struk dicetak", receipt)
}
