package model

import (
	"time"

	"github.com/google/uuid"
)

// Price is one retailer's current offer for a product
type Price struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"required"`
	RetailerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"retailer_id" validate:"required"`
	Price        float64   `gorm:"not null" json:"price" validate:"gte=0"`
	Currency     string    `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	URL          string    `gorm:"type:varchar(1000);not null" json:"url" validate:"required"`
	InStock      bool      `gorm:"default:true" json:"in_stock"`
	ShippingCost float64   `gorm:"default:0" json:"shipping_cost"`
	LastUpdated  time.Time `json:"last_updated"`

	// Relations
	Product  *Product  `json:"product,omitempty"`
	Retailer *Retailer `json:"retailer,omitempty"`
}

// PriceHistory is an append-only sample of an offer at a point in time.
// Rows are only ever inserted; there is no update or delete path.
type PriceHistory struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index:idx_price_history_product_time,priority:1" json:"product_id"`
	RetailerID uuid.UUID `gorm:"type:uuid;not null" json:"retailer_id"`
	Price      float64   `gorm:"not null" json:"price"`
	Currency   string    `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	RecordedAt time.Time `gorm:"index:idx_price_history_product_time,priority:2" json:"recorded_at"`
}
