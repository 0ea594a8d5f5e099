package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Tagline   string `json:"tagline,omitempty"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // whole Rupiah
	Subtotal  int64  `json:"subtotal"`   // whole Rupiah
}

// Receipt is a value object representing a printable receipt. It is composed
// from a frozen Transaction at render time, never stored.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	TransactionNo string        `json:"transaction_no"`
	Date          string        `json:"date"`
	Lines         []ReceiptLine `json:"lines"`
	Total         int64         `json:"total"`    // whole Rupiah
	Tendered      int64         `json:"tendered"` // whole Rupiah
	Change        int64         `json:"change"`   // whole Rupiah
}

// ReceiptFromTransaction composes a printable receipt from a frozen record.
func ReceiptFromTransaction(header ReceiptHeader, t *Transaction) *Receipt {
	r := &Receipt{
		Header:        header,
		TransactionNo: t.TransactionNo,
		Date:          t.CreatedAt.Format("02/01/2006, 15:04"),
		Total:         t.Total,
		Tendered:      t.Tendered,
		Change:        t.Change,
	}
	for _, l := range t.Lines {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return r
}
