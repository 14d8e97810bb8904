package model

// Retailer is a store we compare prices across
type Retailer struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Domain      string `gorm:"type:varchar(255);not null" json:"domain" validate:"required"`
	LogoURL     string `gorm:"type:varchar(500)" json:"logo_url"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	AffiliateID string `gorm:"type:varchar(100)" json:"affiliate_id"`
	APIKey      string `gorm:"type:varchar(255)" json:"-"` // Hidden from JSON

	// Relations
	Prices []Price `json:"prices,omitempty"`
}
