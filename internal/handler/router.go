package handler

import (
	"github.com/gofiber/fiber/v2"
)

// API aggregates the handlers and owns route registration. Auth, Saved
// and AuthMiddleware are nil when no relational store is wired; their
// routes are simply not mounted.
type API struct {
	Health         *HealthHandler
	Search         *SearchHandler
	Product        *ProductHandler
	Alert          *AlertHandler
	FX             *FXHandler
	Auth           *AuthHandler
	Saved          *SavedHandler
	AuthMiddleware fiber.Handler
}

func (a *API) Register(app *fiber.App) {
	app.Get("/", a.Health.Root)
	app.Get("/health", a.Health.Check)

	api := app.Group("/api/v1")

	api.Get("/search", a.Search.Search)
	api.Get("/products/:id", a.Product.GetProduct)
	api.Get("/products/:id/recommendations", a.Search.Recommendations)
	api.Post("/alerts", a.Alert.CreateAlert)
	api.Get("/fx-rates", a.FX.Rates)
	api.Get("/trending", a.Product.Trending)
	api.Get("/price-history/:id", a.Product.PriceHistory)

	if a.Auth != nil {
		auth := api.Group("/auth")
		auth.Post("/register", a.Auth.Register)
		auth.Post("/login", a.Auth.Login)
	}

	if a.Saved != nil && a.AuthMiddleware != nil {
		saved := api.Group("/saved", a.AuthMiddleware)
		saved.Get("/", a.Saved.ListSaved)
		saved.Post("/:productID", a.Saved.SaveProduct)
	}
}
