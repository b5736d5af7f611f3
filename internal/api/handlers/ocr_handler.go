package handlers

import (
	"daidokoro-note/domain"
	"daidokoro-note/internal/api/presenters"
	"daidokoro-note/pkg/ocr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OCRHandler interface {
		IngestRecipe(c *fiber.Ctx) error
		EncodeImage(c *fiber.Ctx) error
	}

	ocrHandler struct {
		ocrService ocr.OCRService
		validator  *validator.Validate
	}
)

func NewOCRHandler(ocrService ocr.OCRService, validator *validator.Validate) OCRHandler {
	return &ocrHandler{
		ocrService: ocrService,
		validator:  validator,
	}
}

func (h *ocrHandler) IngestRecipe(c *fiber.Ctx) error {
	req := new(domain.IngestRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestRecipe, err)
	}
	req.Image = image

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestRecipe, err)
	}

	res, err := h.ocrService.IngestRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedIngestRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessIngestRecipe)
}

func (h *ocrHandler) EncodeImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEncodeImage, err)
	}

	res, err := h.ocrService.EncodeImage(c.Context(), image)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedEncodeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEncodeImage)
}
