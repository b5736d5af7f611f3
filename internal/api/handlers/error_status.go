package handlers

import (
	"daidokoro-note/domain"
	"daidokoro-note/internal/utils"
	"daidokoro-note/pkg/ocr"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorStatus picks the HTTP status for an error returned by a service.
func errorStatus(err error) int {
	var apiErr *ocr.APIError

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrFridgeIngredientNotFound),
		errors.Is(err, domain.ErrHistoryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCorruptState):
		return fiber.StatusInternalServerError
	case errors.Is(err, domain.ErrHistoryNotConvertible):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, utils.ErrImageTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrRecipeTitleRequired),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrTooManyImages),
		errors.Is(err, domain.ErrEmptyIngredientName),
		errors.Is(err, domain.ErrHistoryTitleRequired),
		errors.Is(err, domain.ErrInvalidCookedDate),
		errors.Is(err, utils.ErrUnsupportedImage):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrOCRNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
