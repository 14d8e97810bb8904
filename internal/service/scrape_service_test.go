package service_test

import (
	"context"
	"errors"
	"testing"

	"pricex-backend/internal/scraper"
	"pricex-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScraper serves canned prices per URL and fails for anything else
type stubScraper struct {
	prices map[string]float64
}

func (s *stubScraper) CanHandle(url string) bool {
	return true
}

func (s *stubScraper) ScrapePrice(ctx context.Context, url string) (float64, error) {
	price, ok := s.prices[url]
	if !ok {
		return 0, errors.New("no offer on page")
	}
	return price, nil
}

func (s *stubScraper) ScrapeName(ctx context.Context, url string) (string, error) {
	return "stub product", nil
}

// refusingScraper claims no URL at all
type refusingScraper struct{}

func (refusingScraper) CanHandle(url string) bool { return false }
func (refusingScraper) ScrapePrice(ctx context.Context, url string) (float64, error) {
	return 0, errors.New("unreachable")
}
func (refusingScraper) ScrapeName(ctx context.Context, url string) (string, error) {
	return "", errors.New("unreachable")
}

func TestScrapePrice(t *testing.T) {
	stub := &stubScraper{prices: map[string]float64{
		"https://amazon.com": 1199.00,
	}}
	svc := service.NewScraperService(scraper.NewRegistry(stub))

	t.Run("returns the offer for a supported retailer", func(t *testing.T) {
		point, err := svc.ScrapePrice(context.Background(), "1", "amazon")

		require.NoError(t, err)
		require.NotNil(t, point)
		assert.Equal(t, "amazon", point.Retailer)
		assert.Equal(t, 1199.00, point.Price)
		assert.Equal(t, "USD", point.Currency)
		assert.True(t, point.InStock)
	})

	t.Run("unknown retailer is an error", func(t *testing.T) {
		point, err := svc.ScrapePrice(context.Background(), "1", "aliexpress")

		require.Error(t, err)
		assert.Nil(t, point)
	})

	t.Run("no capable scraper yields nil, nil", func(t *testing.T) {
		refusing := service.NewScraperService(scraper.NewRegistry(refusingScraper{}))

		point, err := refusing.ScrapePrice(context.Background(), "1", "amazon")

		require.NoError(t, err)
		assert.Nil(t, point)
	})
}

func TestScrapeAllPrices(t *testing.T) {
	t.Run("keeps only the successful fetches", func(t *testing.T) {
		stub := &stubScraper{prices: map[string]float64{
			"https://amazon.com":  1199.00,
			"https://walmart.com": 1189.00,
		}}
		svc := service.NewScraperService(scraper.NewRegistry(stub))

		points := svc.ScrapeAllPrices(context.Background(), "1")

		require.Len(t, points, 2)
		seen := map[string]float64{}
		for _, point := range points {
			seen[point.Retailer] = point.Price
		}
		assert.Equal(t, 1199.00, seen["amazon"])
		assert.Equal(t, 1189.00, seen["walmart"])
	})

	t.Run("every retailer failing still returns an empty list", func(t *testing.T) {
		svc := service.NewScraperService(scraper.NewRegistry(&stubScraper{}))

		points := svc.ScrapeAllPrices(context.Background(), "1")

		require.NotNil(t, points)
		assert.Empty(t, points)
	})
}
