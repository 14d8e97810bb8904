package service

import (
	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"

	"github.com/google/uuid"
)

type CatalogService interface {
	GetProduct(id, currency string, region model.Region) (*model.ProductView, error)
	Trending(limit int) ([]model.ProductView, error)
	PriceHistory(id string, days int, currency string) ([]model.HistorySample, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
	prices  repository.PriceRepository // nil when no store is wired
}

func NewCatalogService(catalog repository.CatalogRepository, prices repository.PriceRepository) CatalogService {
	return &catalogService{
		catalog: catalog,
		prices:  prices,
	}
}

// GetProduct returns the full catalog document. The currency and region
// parameters are accepted but the returned prices are not converted.
func (s *catalogService) GetProduct(id, currency string, region model.Region) (*model.ProductView, error) {
	return s.catalog.FindByID(id)
}

func (s *catalogService) Trending(limit int) ([]model.ProductView, error) {
	return s.catalog.Trending(limit)
}

// PriceHistory serves recorded samples when the store has any for the
// product; otherwise the fixed development samples stand in.
func (s *catalogService) PriceHistory(id string, days int, currency string) ([]model.HistorySample, error) {
	if s.prices != nil {
		if productID, err := uuid.Parse(id); err == nil {
			rows, err := s.prices.HistoryByProduct(productID, days)
			if err == nil && len(rows) > 0 {
				samples := make([]model.HistorySample, 0, len(rows))
				for _, row := range rows {
					samples = append(samples, model.HistorySample{
						Date:  row.RecordedAt.Format("2006-01-02"),
						Price: row.Price,
					})
				}
				return samples, nil
			}
		}
	}

	return []model.HistorySample{
		{Date: "2024-01-01", Price: 1299.00},
		{Date: "2024-01-15", Price: 1249.00},
		{Date: "2024-02-01", Price: 1199.00},
	}, nil
}
