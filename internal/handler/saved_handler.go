package handler

import (
	"pricex-backend/internal/model"
	"pricex-backend/internal/repository"
	"pricex-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SavedHandler struct {
	savedRepo repository.SavedProductRepository
	auditRepo repository.AuditRepository
}

func NewSavedHandler(savedRepo repository.SavedProductRepository, auditRepo repository.AuditRepository) *SavedHandler {
	return &SavedHandler{
		savedRepo: savedRepo,
		auditRepo: auditRepo,
	}
}

// SaveProduct handles POST /api/v1/saved/:productID
func (h *SavedHandler) SaveProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productID"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	saved, err := h.savedRepo.Save(userID, productID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save product"})
	}

	// Audit off the request path; the fiber context is not safe to touch
	// from a goroutine, so copy what we need first
	entry := &model.AuditLog{
		UserID:     &userID,
		Action:     "product_saved",
		EntityType: "product",
		EntityID:   productID.String(),
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
	}
	go func() {
		if err := h.auditRepo.Record(entry); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to write audit log")
		}
	}()

	return c.Status(201).JSON(fiber.Map{"message": "Product saved", "data": saved})
}

// ListSaved handles GET /api/v1/saved
func (h *SavedHandler) ListSaved(c *fiber.Ctx) error {
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	saved, err := h.savedRepo.ListByUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(saved)
}
