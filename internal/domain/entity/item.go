package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a reusable catalog product. Selecting one feeds its name and
// selling price into the cart exactly as if the operator typed them.
type Item struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:50;not null" json:"name"`
	BuyingPrice  int64          `gorm:"default:0" json:"buying_price"`  // whole Rupiah
	SellingPrice int64          `gorm:"not null" json:"selling_price"`  // whole Rupiah
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
