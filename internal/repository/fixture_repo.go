package repository

import (
	"strings"
	"time"

	"pricex-backend/internal/model"
)

// fixtureCatalog is the static development dataset used in place of real
// persistence and search. Read-only after construction.
type fixtureCatalog struct {
	products []model.ProductView
}

// NewFixtureCatalog builds the in-memory catalog the service boots with
// when no database is reachable. Tests run against the same dataset.
func NewFixtureCatalog() CatalogRepository {
	now := time.Now()
	return &fixtureCatalog{
		products: []model.ProductView{
			{
				ID:          "1",
				Name:        "iPhone 15 Pro Max",
				Description: "Apple's flagship smartphone with titanium design",
				Brand:       "Apple",
				Category:    "Electronics",
				ImageURL:    "https://via.placeholder.com/300",
				Prices: []model.PricePoint{
					{
						Retailer:    "Amazon",
						Price:       1199.00,
						Currency:    "USD",
						URL:         "https://amazon.com",
						InStock:     true,
						LastUpdated: now,
					},
					{
						Retailer:    "Best Buy",
						Price:       1199.00,
						Currency:    "USD",
						URL:         "https://bestbuy.com",
						InStock:     true,
						LastUpdated: now,
					},
				},
				Rating:      4.8,
				ReviewCount: 1234,
			},
			{
				ID:          "2",
				Name:        "Samsung Galaxy S24 Ultra",
				Description: "Samsung's premium Android smartphone",
				Brand:       "Samsung",
				Category:    "Electronics",
				ImageURL:    "https://via.placeholder.com/300",
				Prices: []model.PricePoint{
					{
						Retailer:    "Amazon",
						Price:       1299.00,
						Currency:    "USD",
						URL:         "https://amazon.com",
						InStock:     true,
						LastUpdated: now,
					},
					{
						Retailer:    "Samsung",
						Price:       1299.00,
						Currency:    "USD",
						URL:         "https://samsung.com",
						InStock:     true,
						LastUpdated: now,
					},
				},
				Rating:      4.7,
				ReviewCount: 987,
			},
		},
	}
}

func (f *fixtureCatalog) FindByID(id string) (*model.ProductView, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			product := f.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (f *fixtureCatalog) SearchByName(query string) ([]model.ProductView, error) {
	matches := []model.ProductView{}
	needle := strings.ToLower(query)
	for _, product := range f.products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			matches = append(matches, product)
		}
	}
	return matches, nil
}

func (f *fixtureCatalog) Trending(limit int) ([]model.ProductView, error) {
	if limit > len(f.products) {
		limit = len(f.products)
	}
	return f.products[:limit], nil
}
