package repository

import (
	"time"

	"pricex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceRepository interface {
	Upsert(price *model.Price) error
	AppendHistory(entry *model.PriceHistory) error
	HistoryByProduct(productID uuid.UUID, days int) ([]model.PriceHistory, error)
}

type priceRepo struct {
	db *gorm.DB
}

func NewPriceRepo(db *gorm.DB) PriceRepository {
	return &priceRepo{db}
}

// Upsert replaces the current offer for a (product, retailer) pair
func (r *priceRepo) Upsert(price *model.Price) error {
	var existing model.Price
	err := r.db.
		Where("product_id = ? AND retailer_id = ?", price.ProductID, price.RetailerID).
		First(&existing).Error
	if err != nil {
		return r.db.Create(price).Error
	}
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"price":         price.Price,
		"currency":      price.Currency,
		"url":           price.URL,
		"in_stock":      price.InStock,
		"shipping_cost": price.ShippingCost,
		"last_updated":  price.LastUpdated,
	}).Error
}

// AppendHistory inserts a sample. History rows are never updated or deleted.
func (r *priceRepo) AppendHistory(entry *model.PriceHistory) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	return r.db.Create(entry).Error
}

func (r *priceRepo) HistoryByProduct(productID uuid.UUID, days int) ([]model.PriceHistory, error) {
	since := time.Now().AddDate(0, 0, -days)
	var history []model.PriceHistory
	err := r.db.
		Where("product_id = ? AND recorded_at >= ?", productID, since).
		Order("recorded_at ASC").
		Find(&history).Error
	return history, err
}
