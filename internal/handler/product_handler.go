package handler

import (
	"errors"

	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"
	"pricex-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProduct handles GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	currency := c.Query("currency", "USD")

	region, ok := model.ParseRegion(c.Query("region"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}

	product, err := h.service.GetProduct(id, currency, region)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(product)
}

// Trending handles GET /api/v1/trending
func (h *ProductHandler) Trending(c *fiber.Ctx) error {
	if _, ok := model.ParseRegion(c.Query("region")); !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}

	limit, err := queryInt(c, "limit", 10)
	if err != nil || limit < 1 || limit > 50 {
		return c.Status(400).JSON(fiber.Map{"error": "limit must be an integer between 1 and 50"})
	}

	trending, err := h.service.Trending(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"trending": trending})
}

// PriceHistory handles GET /api/v1/price-history/:id
func (h *ProductHandler) PriceHistory(c *fiber.Ctx) error {
	id := c.Params("id")

	days, err := queryInt(c, "days", 30)
	if err != nil || days < 1 || days > 365 {
		return c.Status(400).JSON(fiber.Map{"error": "days must be an integer between 1 and 365"})
	}
	currency := c.Query("currency", "USD")

	history, err := h.service.PriceHistory(id, days, currency)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{
		"product_id": id,
		"history":    history,
		"currency":   currency,
	})
}
