package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pricex-backend/internal/model"
	"pricex-backend/internal/scraper"
	"pricex-backend/pkg/logger"
)

// Retailers we gather offers from
var defaultRetailers = map[string]string{
	"amazon":  "https://amazon.com",
	"ebay":    "https://ebay.com",
	"walmart": "https://walmart.com",
	"bestbuy": "https://bestbuy.com",
	"target":  "https://target.com",
}

type ScraperService interface {
	ScrapePrice(ctx context.Context, productID, retailer string) (*model.PricePoint, error)
	ScrapeAllPrices(ctx context.Context, productID string) []model.PricePoint
}

type scrapeService struct {
	registry  *scraper.Registry
	retailers map[string]string
}

func NewScraperService(registry *scraper.Registry) ScraperService {
	return &scrapeService{
		registry:  registry,
		retailers: defaultRetailers,
	}
}

// ScrapePrice fetches one retailer's current offer. A nil point with a
// nil error means no scraper claims the retailer's page.
func (s *scrapeService) ScrapePrice(ctx context.Context, productID, retailer string) (*model.PricePoint, error) {
	url, ok := s.retailers[retailer]
	if !ok {
		return nil, fmt.Errorf("unknown retailer %q", retailer)
	}

	sc := s.registry.Find(url)
	if sc == nil {
		return nil, nil
	}

	price, err := sc.ScrapePrice(ctx, url)
	if err != nil {
		return nil, err
	}

	return &model.PricePoint{
		Retailer:    retailer,
		Price:       price,
		Currency:    "USD",
		URL:         url,
		InStock:     true,
		LastUpdated: time.Now(),
	}, nil
}

// ScrapeAllPrices fans out across every supported retailer, waits for
// all fetches and keeps whatever succeeded. Failures and absent results
// are dropped: the caller always gets zero or more offers, never an
// error.
func (s *scrapeService) ScrapeAllPrices(ctx context.Context, productID string) []model.PricePoint {
	results := make(chan *model.PricePoint, len(s.retailers))

	var wg sync.WaitGroup
	for retailer := range s.retailers {
		wg.Add(1)
		go func(retailer string) {
			defer wg.Done()
			point, err := s.ScrapePrice(ctx, productID, retailer)
			if err != nil {
				logger.Log.Debug().
					Err(err).
					Str("product_id", productID).
					Str("retailer", retailer).
					Msg("scrape failed")
				return
			}
			if point != nil {
				results <- point
			}
		}(retailer)
	}
	wg.Wait()
	close(results)

	points := []model.PricePoint{}
	for point := range results {
		points = append(points, *point)
	}
	return points
}
