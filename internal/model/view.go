package model

import "time"

// PricePoint is one retailer's offer as exposed by the API
type PricePoint struct {
	Retailer    string    `json:"retailer"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	URL         string    `json:"url"`
	InStock     bool      `json:"in_stock"`
	Shipping    *string   `json:"shipping,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// ProductView is the catalog document returned by search, detail and
// trending endpoints. Detached from the persistence entity on purpose:
// price points carry the retailer name, not a foreign key.
type ProductView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Brand       string       `json:"brand"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"image_url"`
	Prices      []PricePoint `json:"prices"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	UPC         *string      `json:"upc,omitempty"`
	EAN         *string      `json:"ean,omitempty"`
	MPN         *string      `json:"mpn,omitempty"`
}

// SearchResult is the search response envelope
type SearchResult struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
	Query    string        `json:"query"`
}

// HistorySample is one (date, price) entry of a price history response
type HistorySample struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// FXRates is the foreign exchange response envelope
type FXRates struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp string             `json:"timestamp"`
}
