package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Earning is one append-only income entry. Sale entries reference the
// transaction they came from; manual entries do not.
type Earning struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Amount        int64              `gorm:"not null" json:"amount"` // whole Rupiah
	Source        enum.EarningSource `gorm:"size:20;not null" json:"source"`
	TransactionID *uuid.UUID         `gorm:"type:uuid;index" json:"transaction_id,omitempty"`
	RecordedAt    time.Time          `gorm:"not null;index" json:"recorded_at"`
}

// BeforeCreate generates a UUID before creating a new earning
func (e *Earning) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Earning model
func (Earning) TableName() string {
	return "earnings"
}

// EarningSummary holds the aggregated income totals shown on the earnings
// panel: last 7 days and the current calendar month.
type EarningSummary struct {
	Weekly  int64 `json:"weekly"`  // whole Rupiah
	Monthly int64 `json:"monthly"` // whole Rupiah
}
