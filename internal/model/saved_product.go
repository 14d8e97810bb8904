package model

import "github.com/google/uuid"

// SavedProduct links a user to a product on their watchlist
type SavedProduct struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	// Relations
	User    *User    `json:"-"`
	Product *Product `json:"product,omitempty"`
}
