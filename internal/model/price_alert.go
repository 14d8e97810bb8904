package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlert is a user's request to be notified when a product's price
// crosses a target. TriggeredAt is set once, the first time it fires.
type PriceAlert struct {
	BaseModel
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	TargetPrice float64    `gorm:"not null" json:"target_price"`
	Currency    string     `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`

	// Relations
	User *User `json:"-"`
}

// AlertRequest is the alert record accepted by POST /api/v1/alerts
type AlertRequest struct {
	ID          string    `json:"id" validate:"required"`
	ProductID   string    `json:"product_id" validate:"required"`
	UserID      string    `json:"user_id"`
	TargetPrice float64   `json:"target_price" validate:"gte=0"`
	Currency    string    `json:"currency"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}
