package repository

import (
	"errors"
	"fmt"

	"pricex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when no product matches the requested id
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read model behind search, detail and trending.
// Handlers never see where the documents come from, so the fixture dataset
// and the relational store are interchangeable.
type CatalogRepository interface {
	FindByID(id string) (*model.ProductView, error)
	SearchByName(query string) ([]model.ProductView, error)
	Trending(limit int) ([]model.ProductView, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo serves catalog documents from the relational store
func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db}
}

func (r *catalogRepo) FindByID(id string) (*model.ProductView, error) {
	// Ids are uuid-typed in the store; anything else can't match and
	// would only trip a postgres cast error.
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var product model.Product
	err = r.db.Preload("Prices.Retailer").First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	view := toView(&product)
	return &view, nil
}

func (r *catalogRepo) SearchByName(query string) ([]model.ProductView, error) {
	var products []model.Product
	err := r.db.Preload("Prices.Retailer").
		Where("name ILIKE ?", "%"+query+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return toViews(products), nil
}

func (r *catalogRepo) Trending(limit int) ([]model.ProductView, error) {
	var products []model.Product
	err := r.db.Preload("Prices.Retailer").
		Order("review_count DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return toViews(products), nil
}

func toViews(products []model.Product) []model.ProductView {
	views := make([]model.ProductView, 0, len(products))
	for i := range products {
		views = append(views, toView(&products[i]))
	}
	return views
}

func toView(p *model.Product) model.ProductView {
	view := model.ProductView{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		UPC:         p.UPC,
		EAN:         p.EAN,
		MPN:         p.MPN,
		Prices:      []model.PricePoint{},
	}
	if len(p.Images) > 0 {
		view.ImageURL = p.Images[0]
	}
	for _, price := range p.Prices {
		point := model.PricePoint{
			Price:       price.Price,
			Currency:    price.Currency,
			URL:         price.URL,
			InStock:     price.InStock,
			LastUpdated: price.LastUpdated,
		}
		if price.Retailer != nil {
			point.Retailer = price.Retailer.Name
		}
		if price.ShippingCost > 0 {
			shipping := fmt.Sprintf("%.2f %s", price.ShippingCost, price.Currency)
			point.Shipping = &shipping
		}
		view.Prices = append(view.Prices, point)
	}
	return view
}
