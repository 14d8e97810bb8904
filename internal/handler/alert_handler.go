package handler

import (
	"pricex-backend/internal/model"
	"pricex-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	service service.AlertService
}

func NewAlertHandler(s service.AlertService) *AlertHandler {
	return &AlertHandler{service: s}
}

// CreateAlert handles POST /api/v1/alerts
func (h *AlertHandler) CreateAlert(c *fiber.Ctx) error {
	var req model.AlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	alertID, err := h.service.CreateAlert(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "created", "alert_id": alertID})
}
