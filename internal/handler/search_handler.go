package handler

import (
	"pricex-backend/internal/model"
	"pricex-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service service.SearchService
}

func NewSearchHandler(s service.SearchService) *SearchHandler {
	return &SearchHandler{service: s}
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required query parameter 'q'"})
	}

	region, ok := model.ParseRegion(c.Query("region"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}
	if _, ok := model.ParseLanguage(c.Query("language")); !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid language"})
	}

	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "page must be an integer >= 1"})
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil || limit < 1 || limit > 100 {
		return c.Status(400).JSON(fiber.Map{"error": "limit must be an integer between 1 and 100"})
	}

	// category, min_price and max_price are accepted as filters but only
	// shape-checked for now
	if _, err := queryFloat(c, "min_price"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "min_price must be a number"})
	}
	if _, err := queryFloat(c, "max_price"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "max_price must be a number"})
	}

	result, err := h.service.Search(query, region, page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(result)
}

// Recommendations handles GET /api/v1/products/:id/recommendations
func (h *SearchHandler) Recommendations(c *fiber.Ctx) error {
	recommendations, err := h.service.Recommendations(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}
