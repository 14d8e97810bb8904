package service

import (
	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"
	"pricex-backend/pkg/logger"
)

type SearchService interface {
	Search(query string, region model.Region, page, limit int) (*model.SearchResult, error)
	Recommendations(productID string) ([]model.ProductView, error)
}

type searchService struct {
	catalog repository.CatalogRepository
	audit   repository.AuditRepository // nil when no store is wired
}

func NewSearchService(catalog repository.CatalogRepository, audit repository.AuditRepository) SearchService {
	return &searchService{
		catalog: catalog,
		audit:   audit,
	}
}

// Search matches products by case-insensitive substring on the name.
// The result list is not sliced by page; page and limit are echoed back
// as requested.
func (s *searchService) Search(query string, region model.Region, page, limit int) (*model.SearchResult, error) {
	products, err := s.catalog.SearchByName(query)
	if err != nil {
		return nil, err
	}

	result := &model.SearchResult{
		Products: products,
		Total:    len(products),
		Page:     page,
		Limit:    limit,
		Query:    query,
	}

	// Best-effort query log, off the request path
	if s.audit != nil {
		entry := &model.SearchQuery{
			Query:        query,
			Region:       string(region),
			ResultsCount: result.Total,
		}
		go func() {
			if err := s.audit.RecordSearch(entry); err != nil {
				logger.Log.Warn().Err(err).Msg("failed to record search query")
			}
		}()
	}

	return result, nil
}

// Recommendations returns every catalog product except the given one
func (s *searchService) Recommendations(productID string) ([]model.ProductView, error) {
	all, err := s.catalog.SearchByName("")
	if err != nil {
		return nil, err
	}
	recommendations := make([]model.ProductView, 0, len(all))
	for _, product := range all {
		if product.ID != productID {
			recommendations = append(recommendations, product)
		}
	}
	return recommendations, nil
}
