package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction is a frozen record of a finalized cart and payment. It is
// created once by the finalizer with a deep copy of the cart lines and is
// never mutated afterwards; consumers (receipt renderer, history listing)
// read it as a value.
type Transaction struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	RegisterID    string                 `gorm:"size:100;not null;index" json:"register_id"`
	TransactionNo string                 `gorm:"size:100;unique;not null" json:"transaction_no"`
	Status        enum.TransactionStatus `gorm:"default:0" json:"status"`
	Total         int64                  `gorm:"not null" json:"total"`    // whole Rupiah
	Tendered      int64                  `gorm:"not null" json:"tendered"` // whole Rupiah
	Change        int64                  `gorm:"not null" json:"change"`   // whole Rupiah
	CreatedAt     time.Time              `json:"created_at"`
	ClosedAt      *time.Time             `json:"closed_at,omitempty"`

	// Relationships
	Lines []TransactionLine `gorm:"foreignKey:TransactionID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionLine is one immutable line of a finalized transaction.
type TransactionLine struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	CartLineID    string    `gorm:"size:100;not null" json:"cart_line_id"`
	Name          string    `gorm:"size:50;not null" json:"name"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"` // whole Rupiah
	Quantity      int       `gorm:"not null" json:"quantity"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"` // whole Rupiah
}

// BeforeCreate generates a UUID before creating a new transaction line
func (l *TransactionLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionLine model
func (TransactionLine) TableName() string {
	return "transaction_lines"
}

// FreezeTransaction builds an immutable Transaction from a cart and payment.
// The cart lines are copied so later cart mutation cannot alter the record.
func FreezeTransaction(registerID, transactionNo string, cart *Cart, tendered int64) *Transaction {
	total := cart.Total()
	t := &Transaction{
		ID:            uuid.New(),
		RegisterID:    registerID,
		TransactionNo: transactionNo,
		Status:        enum.TransactionStatusFinalized,
		Total:         total,
		Tendered:      tendered,
		Change:        tendered - total,
		CreatedAt:     time.Now(),
	}

	for _, l := range cart.Lines() {
		t.Lines = append(t.Lines, TransactionLine{
			ID:            uuid.New(),
			TransactionID: t.ID,
			CartLineID:    l.ID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			Subtotal:      l.Subtotal(),
		})
	}

	return t
}
