package repository

import (
	"pricex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedProductRepository interface {
	Save(userID, productID uuid.UUID) (*model.SavedProduct, error)
	ListByUser(userID uuid.UUID) ([]model.SavedProduct, error)
}

type savedRepo struct {
	db *gorm.DB
}

func NewSavedProductRepo(db *gorm.DB) SavedProductRepository {
	return &savedRepo{db}
}

// Save is idempotent: one row per (user, product) pairing
func (r *savedRepo) Save(userID, productID uuid.UUID) (*model.SavedProduct, error) {
	saved := model.SavedProduct{UserID: userID, ProductID: productID}
	err := r.db.
		Where("user_id = ? AND product_id = ?", userID, productID).
		FirstOrCreate(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedRepo) ListByUser(userID uuid.UUID) ([]model.SavedProduct, error) {
	var saved []model.SavedProduct
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&saved).Error
	return saved, err
}
