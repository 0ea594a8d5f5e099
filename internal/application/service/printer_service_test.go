package service

import (
	"testing"

	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFormatReceipt(t *testing.T) {
	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "STRUK PEMBELIAN",
			Tagline:   "Kasir Modern - POS Digital",
		},
		TransactionNo: "TRX-ABCD1234",
		Date:          "31/08/2026, 14:05",
		Lines: []entity.ReceiptLine{
			{Name: "Kopi", Quantity: 2, UnitPrice: 15_000, Subtotal: 30_000},
		},
		Total:    30_000,
		Tendered: 50_000,
		Change:   20_000,
	}

	out := string(FormatReceipt(r))
	assert.Contains(t, out, "STRUK PEMBELIAN")
	assert.Contains(t, out, "TRX-ABCD1234")
	assert.Contains(t, out, "Kopi")
	assert.Contains(t, out, "2 x Rp 15.000")
	assert.Contains(t, out, "Rp 30.000")
	assert.Contains(t, out, "Bayar")
	assert.Contains(t, out, "Rp 20.000")
	assert.Contains(t, out, "Terima kasih atas kunjungan Anda")

	// Ends with a paper cut.
	raw := FormatReceipt(r)
	assert.Equal(t, []byte{0x1D, 'V', 0x00}, raw[len(raw)-3:])
}
