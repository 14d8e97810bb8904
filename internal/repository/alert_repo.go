package repository

import (
	"time"

	"pricex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(alert *model.PriceAlert) error
	FindActiveByProduct(productID uuid.UUID) ([]model.PriceAlert, error)
	MarkTriggered(id uuid.UUID) error
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db}
}

func (r *alertRepo) Create(alert *model.PriceAlert) error {
	return r.db.Create(alert).Error
}

func (r *alertRepo) FindActiveByProduct(productID uuid.UUID) ([]model.PriceAlert, error) {
	var alerts []model.PriceAlert
	err := r.db.
		Where("product_id = ? AND is_active = ? AND triggered_at IS NULL", productID, true).
		Find(&alerts).Error
	return alerts, err
}

// MarkTriggered stamps triggered_at exactly once; an already-fired alert
// is left untouched.
func (r *alertRepo) MarkTriggered(id uuid.UUID) error {
	return r.db.Model(&model.PriceAlert{}).
		Where("id = ? AND triggered_at IS NULL", id).
		Update("triggered_at", time.Now()).Error
}
