package handler

import (
	"pricex-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FXHandler struct {
	service service.FXService
}

func NewFXHandler(s service.FXService) *FXHandler {
	return &FXHandler{service: s}
}

// Rates handles GET /api/v1/fx-rates
func (h *FXHandler) Rates(c *fiber.Ctx) error {
	base := c.Query("base", "USD")
	return c.JSON(h.service.Rates(base))
}
