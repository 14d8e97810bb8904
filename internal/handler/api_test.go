package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pricex-backend/internal/handler"
	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"
	"pricex-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalog := repository.NewFixtureCatalog()
	api := &handler.API{
		Health:  handler.NewHealthHandler(),
		Search:  handler.NewSearchHandler(service.NewSearchService(catalog, nil)),
		Product: handler.NewProductHandler(service.NewCatalogService(catalog, nil)),
		Alert:   handler.NewAlertHandler(service.NewAlertService(nil)),
		FX:      handler.NewFXHandler(service.NewFXService()),
	}

	app := fiber.New()
	api.Register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body io.Reader, out interface{}) int {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestSearch(t *testing.T) {
	app := newTestApp(t)

	t.Run("matches by case-insensitive substring", func(t *testing.T) {
		var result model.SearchResult
		status := doRequest(t, app, http.MethodGet, "/api/v1/search?q=iphone", nil, &result)

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 1, result.Total)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "1", result.Products[0].ID)
		assert.Equal(t, "iPhone 15 Pro Max", result.Products[0].Name)
		assert.Equal(t, "iphone", result.Query)
	})

	t.Run("no match returns empty list, not an error", func(t *testing.T) {
		var result model.SearchResult
		status := doRequest(t, app, http.MethodGet, "/api/v1/search?q=nonexistent", nil, &result)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, result.Total)
		assert.NotNil(t, result.Products)
		assert.Empty(t, result.Products)
	})

	t.Run("echoes page and limit without slicing", func(t *testing.T) {
		var result model.SearchResult
		status := doRequest(t, app, http.MethodGet, "/api/v1/search?q=s&page=3&limit=5", nil, &result)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 3, result.Page)
		assert.Equal(t, 5, result.Limit)
		assert.Equal(t, len(result.Products), result.Total)
	})

	t.Run("missing q is rejected", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodGet, "/api/v1/search", nil, &body)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Missing required query parameter 'q'", body["error"])
	})

	t.Run("rejects out-of-range paging", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/search?q=iphone&page=0",
			"/api/v1/search?q=iphone&page=abc",
			"/api/v1/search?q=iphone&limit=0",
			"/api/v1/search?q=iphone&limit=101",
		} {
			status := doRequest(t, app, http.MethodGet, target, nil, nil)
			assert.Equal(t, http.StatusBadRequest, status, target)
		}
	})

	t.Run("rejects unknown region and language", func(t *testing.T) {
		status := doRequest(t, app, http.MethodGet, "/api/v1/search?q=iphone&region=atlantis", nil, nil)
		assert.Equal(t, http.StatusBadRequest, status)

		status = doRequest(t, app, http.MethodGet, "/api/v1/search?q=iphone&language=xx", nil, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rejects non-numeric price filters", func(t *testing.T) {
		status := doRequest(t, app, http.MethodGet, "/api/v1/search?q=iphone&min_price=cheap", nil, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetProduct(t *testing.T) {
	app := newTestApp(t)

	t.Run("known product", func(t *testing.T) {
		var product model.ProductView
		status := doRequest(t, app, http.MethodGet, "/api/v1/products/1", nil, &product)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "1", product.ID)
		assert.Equal(t, "Apple", product.Brand)
		require.Len(t, product.Prices, 2)
		assert.Equal(t, "Amazon", product.Prices[0].Retailer)
		assert.Equal(t, 1199.00, product.Prices[0].Price)
	})

	t.Run("unknown product", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodGet, "/api/v1/products/999", nil, &body)

		require.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Product not found", body["error"])
	})

	t.Run("currency parameter does not alter prices", func(t *testing.T) {
		var product model.ProductView
		status := doRequest(t, app, http.MethodGet, "/api/v1/products/2?currency=EUR", nil, &product)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 1299.00, product.Prices[0].Price)
		assert.Equal(t, "USD", product.Prices[0].Currency)
	})
}

func TestRecommendations(t *testing.T) {
	app := newTestApp(t)

	var body struct {
		Recommendations []model.ProductView `json:"recommendations"`
	}
	status := doRequest(t, app, http.MethodGet, "/api/v1/products/1/recommendations", nil, &body)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "2", body.Recommendations[0].ID)
}

func TestTrending(t *testing.T) {
	app := newTestApp(t)

	t.Run("default limit", func(t *testing.T) {
		var body struct {
			Trending []model.ProductView `json:"trending"`
		}
		status := doRequest(t, app, http.MethodGet, "/api/v1/trending", nil, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body.Trending, 2)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		var body struct {
			Trending []model.ProductView `json:"trending"`
		}
		status := doRequest(t, app, http.MethodGet, "/api/v1/trending?limit=1", nil, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body.Trending, 1)
	})

	t.Run("rejects out-of-range limit", func(t *testing.T) {
		status := doRequest(t, app, http.MethodGet, "/api/v1/trending?limit=100", nil, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestPriceHistory(t *testing.T) {
	app := newTestApp(t)

	t.Run("serves the development samples", func(t *testing.T) {
		var body struct {
			ProductID string                `json:"product_id"`
			History   []model.HistorySample `json:"history"`
			Currency  string                `json:"currency"`
		}
		status := doRequest(t, app, http.MethodGet, "/api/v1/price-history/1?currency=EUR", nil, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "1", body.ProductID)
		assert.Equal(t, "EUR", body.Currency)
		require.Len(t, body.History, 3)
		assert.Equal(t, "2024-01-01", body.History[0].Date)
		assert.Equal(t, 1299.00, body.History[0].Price)
		assert.Equal(t, 1199.00, body.History[2].Price)
	})

	t.Run("rejects out-of-range days", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/price-history/1?days=0",
			"/api/v1/price-history/1?days=400",
		} {
			status := doRequest(t, app, http.MethodGet, target, nil, nil)
			assert.Equal(t, http.StatusBadRequest, status, target)
		}
	})
}

func TestFXRates(t *testing.T) {
	app := newTestApp(t)

	t.Run("defaults to USD", func(t *testing.T) {
		var rates model.FXRates
		status := doRequest(t, app, http.MethodGet, "/api/v1/fx-rates", nil, &rates)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "USD", rates.Base)
		assert.Equal(t, 1.0, rates.Rates["USD"])
		assert.Len(t, rates.Rates, 10)
	})

	t.Run("echoes the base without re-basing", func(t *testing.T) {
		var rates model.FXRates
		status := doRequest(t, app, http.MethodGet, "/api/v1/fx-rates?base=EUR", nil, &rates)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "EUR", rates.Base)
		assert.Equal(t, 1.0, rates.Rates["USD"])
		assert.Equal(t, 0.92, rates.Rates["EUR"])
	})
}

func TestCreateAlert(t *testing.T) {
	app := newTestApp(t)

	t.Run("acknowledges a valid alert", func(t *testing.T) {
		payload := model.AlertRequest{
			ID:          "alert-1",
			ProductID:   "1",
			UserID:      "user-1",
			TargetPrice: 999.99,
			Currency:    "USD",
			Email:       "buyer@example.com",
			CreatedAt:   time.Now(),
			Active:      true,
		}
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		var body map[string]string
		status := doRequest(t, app, http.MethodPost, "/api/v1/alerts", strings.NewReader(string(raw)), &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "created", body["status"])
		assert.Equal(t, "alert-1", body["alert_id"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodPost, "/api/v1/alerts", strings.NewReader("{not json"), &body)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid JSON", body["error"])
	})

	t.Run("rejects a payload without required fields", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodPost, "/api/v1/alerts", strings.NewReader(`{"target_price": 10}`), &body)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["error"], "invalid alert payload")
	})
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	t.Run("root", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodGet, "/", nil, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Welcome to PriceX API", body["message"])
		assert.Equal(t, "1.0.0", body["version"])
	})

	t.Run("health", func(t *testing.T) {
		var body map[string]string
		status := doRequest(t, app, http.MethodGet, "/health", nil, &body)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "healthy", body["status"])

		_, err := time.Parse(time.RFC3339, body["timestamp"])
		assert.NoError(t, err)
	})
}
