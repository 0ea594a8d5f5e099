// Package receipt renders a frozen transaction as a downloadable PDF sized
// for 58mm thermal paper.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/pkg/money"
)

// Paper size in mm, matching a 58mm thermal roll.
const (
	pageWidth  = 58
	pageHeight = 200
	margin     = 4
)

// maxNameChars is the widest item name that fits the item column.
const maxNameChars = 15

// Filename builds the download name for a receipt generated at t,
// e.g. "struk_2026-08-31_14-05.pdf".
func Filename(t time.Time) string {
	return "struk_" + t.Format("2006-01-02_15-04") + ".pdf"
}

// RenderPDF renders the receipt into a PDF document.
func RenderPDF(r *entity.Receipt) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	usable := float64(pageWidth - 2*margin)

	// Store header
	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(usable, 4, r.Header.StoreName, "", 1, "C", false, 0, "")
	if r.Header.Tagline != "" {
		pdf.SetFont("Courier", "", 6)
		pdf.CellFormat(usable, 3, r.Header.Tagline, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Courier", "", 6)
	pdf.CellFormat(usable, 3, r.Date, "", 1, "C", false, 0, "")
	pdf.CellFormat(usable, 3, r.TransactionNo, "", 1, "C", false, 0, "")

	separator(pdf, usable)

	// Column headers: ITEM spans its own row, the numbers share one.
	pdf.SetFont("Courier", "B", 6)
	pdf.CellFormat(22, 3, "ITEM", "", 0, "L", false, 0, "")
	pdf.CellFormat(8, 3, "QTY", "", 0, "C", false, 0, "")
	pdf.CellFormat(10, 3, "HARGA", "", 0, "R", false, 0, "")
	pdf.CellFormat(10, 3, "TOTAL", "", 1, "R", false, 0, "")

	pdf.SetFont("Courier", "", 6)
	for _, line := range r.Lines {
		pdf.CellFormat(22, 3, shorten(line.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 3, fmt.Sprintf("%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(10, 3, compact(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(10, 3, compact(line.Subtotal), "", 1, "R", false, 0, "")
	}

	separator(pdf, usable)

	pdf.SetFont("Courier", "B", 7)
	keyValue(pdf, usable, "TOTAL", money.Format(r.Total))
	pdf.SetFont("Courier", "", 6)
	keyValue(pdf, usable, "Bayar", money.Format(r.Tendered))
	keyValue(pdf, usable, "Kembali", money.Format(r.Change))

	separator(pdf, usable)

	pdf.SetFont("Courier", "", 6)
	pdf.CellFormat(usable, 3, "Terima kasih atas kunjungan Anda", "", 1, "C", false, 0, "")
	pdf.CellFormat(usable, 3, "Simpan struk ini sebagai bukti", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func separator(pdf *gofpdf.Fpdf, usable float64) {
	pdf.SetFont("Courier", "", 6)
	pdf.CellFormat(usable, 2, "--------------------------------", "", 1, "C", false, 0, "")
}

func keyValue(pdf *gofpdf.Fpdf, usable float64, key, value string) {
	pdf.CellFormat(usable/2, 3, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 3, value, "", 1, "R", false, 0, "")
}

// shorten clips an item name to the item column.
func shorten(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameChars {
		return name
	}
	return string(runes[:maxNameChars]) + "..."
}

// compact drops the "Rp " prefix so amounts fit the narrow columns.
func compact(amount int64) string {
	s := money.Format(amount)
	if len(s) > 3 && s[:3] == "Rp " {
		return s[3:]
	}
	return s
}
