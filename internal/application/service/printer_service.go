package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
	"github.com/prasety/kasirku-api/pkg/printer"
	"github.com/prasety/kasirku-api/pkg/receipt"
)

// PrinterService composes receipts from frozen transactions and renders
// them as a PDF download or raw ESC/POS output.
type PrinterService struct {
	printer      printer.Printer
	transactions domainRepo.TransactionRepository
	header       entity.ReceiptHeader
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	transactions domainRepo.TransactionRepository,
	header entity.ReceiptHeader,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		transactions: transactions,
		header:       header,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. The composed receipt is
// returned so the handler can show it as JSON when no hardware is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	r := &entity.Receipt{
		Header:        s.header,
		TransactionNo: "TRX-TEST0001",
		Date:          time.Now().Format("02/01/2006, 15:04"),
		Lines: []entity.ReceiptLine{
			{Name: "Contoh Barang 1", Quantity: 1, UnitPrice: 10_000, Subtotal: 10_000},
			{Name: "Contoh Barang 2", Quantity: 2, UnitPrice: 5_000, Subtotal: 10_000},
		},
		Total:    20_000,
		Tendered: 20_000,
		Change:   0,
	}

	if err := s.printer.Print(FormatReceipt(r)); err != nil {
		return r, fmt.Errorf("test print failed: %w", err)
	}
	return r, nil
}

// Receipt composes the printable receipt for a finalized transaction.
func (s *PrinterService) Receipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.NewNotFoundError("Transaksi")
	}
	return entity.ReceiptFromTransaction(s.header, transaction), nil
}

// PrintTransactionReceipt sends the transaction's receipt to the thermal
// printer.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	r, err := s.Receipt(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(FormatReceipt(r)); err != nil {
		log.Printf("Printer error (transaction %s): %v", transactionID, err)
		return r, fmt.Errorf("failed to print receipt: %w", err)
	}
	return r, nil
}

// ReceiptPDF renders the transaction's receipt as a PDF download.
func (s *PrinterService) ReceiptPDF(ctx context.Context, transactionID uuid.UUID) ([]byte, string, error) {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, "", apperror.NewNotFoundError("Transaksi")
	}

	r := entity.ReceiptFromTransaction(s.header, transaction)
	data, err := receipt.RenderPDF(r)
	if err != nil {
		return nil, "", apperror.ErrInternalServer
	}
	return data, receipt.Filename(transaction.CreatedAt), nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes for 58mm paper.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(printer.Width58mm)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Tagline != "" {
		doc.Text(r.Header.Tagline)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("No:", r.TransactionNo).
		KeyValue("Tanggal:", r.Date).
		Separator('-')

	for _, line := range r.Lines {
		doc.ItemRow(line.Name, line.Quantity, money.Format(line.UnitPrice), money.Format(line.Subtotal))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL", money.Format(r.Total)).
		SetBold(false).
		KeyValue("Bayar", money.Format(r.Tendered)).
		KeyValue("Kembali", money.Format(r.Change)).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Terima kasih atas kunjungan Anda").
		Text("Simpan struk ini sebagai bukti").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
