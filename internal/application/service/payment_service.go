package service

import (
	"context"

	"github.com/prasety/kasirku-api/pkg/money"
)

// PaymentState is a pure projection of the cart total against the cash the
// operator keyed in. Nothing is stored; every preview recomputes from
// scratch.
type PaymentState struct {
	Total           int64  `json:"total"`
	TotalDisplay    string `json:"total_display"`
	Tendered        int64  `json:"tendered"`
	TenderedDisplay string `json:"tendered_display"`
	Change          int64  `json:"change"`
	ChangeDisplay   string `json:"change_display"`
	Sufficient      bool   `json:"sufficient"`
	Eligible        bool   `json:"eligible"`
	Hint            string `json:"hint"`
}

// PaymentService derives payment previews from the live cart.
type PaymentService struct {
	carts *CartService
}

// NewPaymentService creates a new payment service
func NewPaymentService(carts *CartService) *PaymentService {
	return &PaymentService{carts: carts}
}

// Preview computes the payment state for a register. Change is signed: a
// negative change is the shortage still owed. Eligible means the sale can
// be finalized right now.
func (s *PaymentService) Preview(ctx context.Context, registerID, tenderedRaw string) *PaymentState {
	lines, total := s.carts.State(ctx, registerID)
	tendered := money.Parse(tenderedRaw)
	return computePaymentState(total, len(lines) == 0, tendered, hasDigit(tenderedRaw))
}

func computePaymentState(total money.Amount, empty bool, tendered money.Amount, entered bool) *PaymentState {
	change := tendered - total
	state := &PaymentState{
		Total:           total,
		TotalDisplay:    money.Format(total),
		Tendered:        tendered,
		TenderedDisplay: money.Format(tendered),
		Change:          change,
		ChangeDisplay:   money.Format(change),
		Sufficient:      change >= 0,
	}
	state.Eligible = !empty && tendered > 0 && change >= 0

	switch {
	case empty:
		state.Hint = "Tambah barang dahulu"
	case !entered:
		state.Hint = "Masukkan uang diterima"
	case change < 0:
		state.Hint = "Kurang " + money.Format(-change)
	default:
		state.Hint = "Cetak Struk"
	}
	return state
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
