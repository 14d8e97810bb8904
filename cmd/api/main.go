package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricex-backend/internal/handler"
	"pricex-backend/internal/middleware"
	"pricex-backend/internal/model"
	"pricex-backend/internal/monitor"
	"pricex-backend/internal/repository"
	"pricex-backend/internal/scraper"
	"pricex-backend/internal/service"
	"pricex-backend/internal/ws"
	"pricex-backend/pkg/database"
	"pricex-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env (.env is optional, system env still applies)
	_ = godotenv.Load()
	logger.Init("pricex-api", os.Getenv("APP_ENV") != "production")

	// 2. Setup Database. Without a reachable store the service runs on
	// the fixture catalog.
	db, err := database.Connect()
	if err != nil {
		logger.Log.Warn().Err(err).Msg("database unreachable, serving the fixture catalog")
		db = nil
	}

	var (
		catalog   repository.CatalogRepository
		auditRepo repository.AuditRepository
		priceRepo repository.PriceRepository
	)
	if db != nil {
		if err := db.AutoMigrate(
			&model.User{}, &model.Product{}, &model.Retailer{}, &model.Price{},
			&model.PriceHistory{}, &model.SavedProduct{}, &model.PriceAlert{},
			&model.SearchQuery{}, &model.AuditLog{},
		); err != nil {
			logger.Log.Fatal().Err(err).Msg("migration failed")
		}
		seedCatalog(db)
		catalog = repository.NewCatalogRepo(db)
		auditRepo = repository.NewAuditRepo(db)
		priceRepo = repository.NewPriceRepo(db)
	} else {
		catalog = repository.NewFixtureCatalog()
	}

	// 3. WebSocket hub for the price/alert event feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	searchService := service.NewSearchService(catalog, auditRepo)
	catalogService := service.NewCatalogService(catalog, priceRepo)
	fxService := service.NewFXService()
	alertService := service.NewAlertService(wsHub)

	api := &handler.API{
		Health:  handler.NewHealthHandler(),
		Search:  handler.NewSearchHandler(searchService),
		Product: handler.NewProductHandler(catalogService),
		Alert:   handler.NewAlertHandler(alertService),
		FX:      handler.NewFXHandler(fxService),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if db != nil {
		userRepo := repository.NewUserRepo(db)
		api.Auth = handler.NewAuthHandler(service.NewAuthService(userRepo))
		api.Saved = handler.NewSavedHandler(repository.NewSavedProductRepo(db), auditRepo)
		api.AuthMiddleware = middleware.RequireAuth(userRepo)

		// 5. Background price monitor
		if interval := scrapeInterval(); interval > 0 {
			mon := monitor.New(
				repository.NewProductRepo(db),
				priceRepo,
				repository.NewAlertRepo(db),
				scraper.NewRegistry(),
				wsHub,
				interval,
			)
			go mon.Start(ctx)
		}
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "PriceX API v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api.Register(app)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		if err := app.Listen(":" + port); err != nil {
			logger.Log.Panic().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info().Msg("shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		logger.Log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Log.Info().Msg("server exited")
}

func scrapeInterval() time.Duration {
	raw := os.Getenv("SCRAPE_INTERVAL")
	if raw == "" {
		return 0
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		logger.Log.Warn().Str("value", raw).Msg("invalid SCRAPE_INTERVAL, monitor disabled")
		return 0
	}
	return interval
}

// seedCatalog inserts the development retailers and products when the
// store is empty
func seedCatalog(db *gorm.DB) {
	productRepo := repository.NewProductRepo(db)
	retailerRepo := repository.NewRetailerRepo(db)

	count, err := productRepo.Count()
	if err != nil || count > 0 {
		return
	}

	retailerDomains := map[string]string{
		"Amazon":   "amazon.com",
		"eBay":     "ebay.com",
		"Walmart":  "walmart.com",
		"Best Buy": "bestbuy.com",
		"Target":   "target.com",
		"Samsung":  "samsung.com",
	}
	byName := make(map[string]*model.Retailer, len(retailerDomains))
	for name, domain := range retailerDomains {
		retailer := &model.Retailer{Name: name, Domain: domain, IsActive: true}
		if err := retailerRepo.Create(retailer); err != nil {
			logger.Log.Warn().Err(err).Str("retailer", name).Msg("retailer seed failed")
			continue
		}
		byName[name] = retailer
	}

	seeds := []struct {
		product model.Product
		offers  map[string]float64 // retailer name -> price
	}{
		{
			product: model.Product{
				Name:        "iPhone 15 Pro Max",
				Description: "Apple's flagship smartphone with titanium design",
				Brand:       "Apple",
				Category:    "Electronics",
				Images:      []string{"https://via.placeholder.com/300"},
				Rating:      4.8,
				ReviewCount: 1234,
				IsActive:    true,
			},
			offers: map[string]float64{"Amazon": 1199.00, "Best Buy": 1199.00},
		},
		{
			product: model.Product{
				Name:        "Samsung Galaxy S24 Ultra",
				Description: "Samsung's premium Android smartphone",
				Brand:       "Samsung",
				Category:    "Electronics",
				Images:      []string{"https://via.placeholder.com/300"},
				Rating:      4.7,
				ReviewCount: 987,
				IsActive:    true,
			},
			offers: map[string]float64{"Amazon": 1299.00, "Samsung": 1299.00},
		},
	}

	for i := range seeds {
		entry := &seeds[i]
		if err := productRepo.Create(&entry.product); err != nil {
			logger.Log.Warn().Err(err).Str("product", entry.product.Name).Msg("product seed failed")
			continue
		}
		for name, amount := range entry.offers {
			retailer, ok := byName[name]
			if !ok {
				continue
			}
			price := model.Price{
				ProductID:   entry.product.ID,
				RetailerID:  retailer.ID,
				Price:       amount,
				Currency:    "USD",
				URL:         "https://" + retailer.Domain,
				InStock:     true,
				LastUpdated: time.Now(),
			}
			if err := db.Create(&price).Error; err != nil {
				logger.Log.Warn().Err(err).Str("product", entry.product.Name).Msg("price seed failed")
			}
		}
	}

	logger.Log.Info().Msg("catalog seeded with development data")
}
