package repository

import (
	"pricex-backend/internal/model"

	"gorm.io/gorm"
)

type RetailerRepository interface {
	Create(retailer *model.Retailer) error
	FindAll() ([]model.Retailer, error)
	FindByName(name string) (*model.Retailer, error)
}

type retailerRepo struct {
	db *gorm.DB
}

func NewRetailerRepo(db *gorm.DB) RetailerRepository {
	return &retailerRepo{db}
}

func (r *retailerRepo) Create(retailer *model.Retailer) error {
	return r.db.Create(retailer).Error
}

func (r *retailerRepo) FindAll() ([]model.Retailer, error) {
	var retailers []model.Retailer
	err := r.db.Where("is_active = ?", true).Find(&retailers).Error
	return retailers, err
}

func (r *retailerRepo) FindByName(name string) (*model.Retailer, error) {
	var retailer model.Retailer
	err := r.db.First(&retailer, "name = ?", name).Error
	return &retailer, err
}
