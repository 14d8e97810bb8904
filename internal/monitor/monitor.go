package monitor

import (
	"context"
	"time"

	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"
	"pricex-backend/internal/scraper"
	"pricex-backend/internal/ws"
	"pricex-backend/pkg/logger"
)

// Monitor periodically re-scrapes every stored offer, appends the price
// history and fires matching alerts.
type Monitor struct {
	products repository.ProductRepository
	prices   repository.PriceRepository
	alerts   repository.AlertRepository
	registry *scraper.Registry
	hub      *ws.Hub
	interval time.Duration
}

func New(
	products repository.ProductRepository,
	prices repository.PriceRepository,
	alerts repository.AlertRepository,
	registry *scraper.Registry,
	hub *ws.Hub,
	interval time.Duration,
) *Monitor {
	return &Monitor{
		products: products,
		prices:   prices,
		alerts:   alerts,
		registry: registry,
		hub:      hub,
		interval: interval,
	}
}

// Start blocks, refreshing on every tick until ctx is cancelled
func (m *Monitor) Start(ctx context.Context) {
	logger.Log.Info().Dur("interval", m.interval).Msg("price monitor started")

	m.refreshAll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info().Msg("price monitor stopped")
			return
		case <-ticker.C:
			m.refreshAll(ctx)
		}
	}
}

func (m *Monitor) refreshAll(ctx context.Context) {
	products, err := m.products.FindAll()
	if err != nil {
		logger.Log.Warn().Err(err).Msg("failed to list products for refresh")
		return
	}

	for i := range products {
		m.refresh(ctx, &products[i])

		// Small delay between products to go easy on the retailers
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (m *Monitor) refresh(ctx context.Context, product *model.Product) {
	lowestByCurrency := map[string]float64{}

	for _, offer := range product.Prices {
		sc := m.registry.Find(offer.URL)
		if sc == nil {
			continue
		}

		value, err := sc.ScrapePrice(ctx, offer.URL)
		if err != nil {
			logger.Log.Debug().
				Err(err).
				Str("product", product.Name).
				Str("url", offer.URL).
				Msg("scrape failed")
			continue
		}

		now := time.Now()
		updated := model.Price{
			ProductID:   product.ID,
			RetailerID:  offer.RetailerID,
			Price:       value,
			Currency:    offer.Currency,
			URL:         offer.URL,
			InStock:     true,
			LastUpdated: now,
		}
		if err := m.prices.Upsert(&updated); err != nil {
			logger.Log.Warn().Err(err).Str("product", product.Name).Msg("price upsert failed")
			continue
		}
		if err := m.prices.AppendHistory(&model.PriceHistory{
			ProductID:  product.ID,
			RetailerID: offer.RetailerID,
			Price:      value,
			Currency:   offer.Currency,
			RecordedAt: now,
		}); err != nil {
			logger.Log.Warn().Err(err).Str("product", product.Name).Msg("history append failed")
		}

		if current, ok := lowestByCurrency[offer.Currency]; !ok || value < current {
			lowestByCurrency[offer.Currency] = value
		}
	}

	if len(lowestByCurrency) > 0 {
		m.checkAlerts(product, lowestByCurrency)
	}
}

// checkAlerts fires every active alert whose target is undercut by the
// lowest offer in the alert's own currency. Alerts with no offer in
// their currency are left alone.
func (m *Monitor) checkAlerts(product *model.Product, lowestByCurrency map[string]float64) {
	alerts, err := m.alerts.FindActiveByProduct(product.ID)
	if err != nil {
		logger.Log.Warn().Err(err).Str("product", product.Name).Msg("failed to load alerts")
		return
	}

	for _, alert := range alerts {
		lowest, ok := lowestByCurrency[alert.Currency]
		if !ok {
			logger.Log.Debug().
				Str("product", product.Name).
				Str("currency", alert.Currency).
				Msg("no offer in the alert's currency, skipping")
			continue
		}
		if lowest > alert.TargetPrice {
			continue
		}
		if err := m.alerts.MarkTriggered(alert.ID); err != nil {
			logger.Log.Warn().Err(err).Str("alert_id", alert.ID.String()).Msg("failed to trigger alert")
			continue
		}
		if m.hub != nil {
			m.hub.Publish("price_alert_triggered", map[string]interface{}{
				"alert_id":     alert.ID,
				"product_id":   product.ID,
				"product_name": product.Name,
				"price":        lowest,
				"target_price": alert.TargetPrice,
				"currency":     alert.Currency,
			})
		}
		logger.Log.Info().
			Str("product", product.Name).
			Float64("price", lowest).
			Float64("target", alert.TargetPrice).
			Msg("price alert triggered")
	}
}
