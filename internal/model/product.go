package model

// Product is the canonical catalog record prices hang off
type Product struct {
	BaseModel
	Name           string            `gorm:"type:varchar(500);index;not null" json:"name" validate:"required"`
	Description    string            `gorm:"type:text" json:"description"`
	Brand          string            `gorm:"type:varchar(100);index" json:"brand"`
	Category       string            `gorm:"type:varchar(100);index" json:"category"`
	UPC            *string           `gorm:"type:varchar(13);uniqueIndex" json:"upc,omitempty"`
	EAN            *string           `gorm:"type:varchar(13);uniqueIndex" json:"ean,omitempty"`
	MPN            *string           `gorm:"type:varchar(50)" json:"mpn,omitempty"`
	Images         []string          `gorm:"serializer:json" json:"images"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`
	Rating         float64           `gorm:"default:0" json:"rating"`
	ReviewCount    int               `gorm:"default:0" json:"review_count"`
	IsActive       bool              `gorm:"default:true" json:"is_active"`

	// Relations
	Prices  []Price        `json:"prices,omitempty"`
	SavedBy []SavedProduct `json:"-"`
}
