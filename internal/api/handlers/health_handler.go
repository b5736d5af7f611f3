package handlers

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/internal/api/presenters"
	"daidokoro-note/pkg/kv"
	"daidokoro-note/pkg/ocr"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		store       kv.KVRepository
		storeDriver string
		ocrService  ocr.OCRService
	}
)

func NewHealthHandler(store kv.KVRepository, storeDriver string, ocrService ocr.OCRService) HealthHandler {
	return &healthHandler{
		store:       store,
		storeDriver: storeDriver,
		ocrService:  ocrService,
	}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "pong"})
}

// Health reports whether the backing store answers. An unconfigured OCR
// service is not a failure.
func (h *healthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	res := domain.HealthResponse{
		Status:         "ok",
		StoreDriver:    h.storeDriver,
		StoreReachable: true,
		OCRConfigured:  h.ocrService.Configured(),
	}

	if err := h.store.Ping(ctx); err != nil {
		res.Status = "degraded"
		res.StoreReachable = false
		return c.Status(fiber.StatusServiceUnavailable).JSON(presenters.Response{
			Status:  false,
			Message: domain.MessageFailedHealth,
			Data:    res,
			Error:   domain.ErrStoreUnavailable.Error(),
		})
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessHealth)
}
