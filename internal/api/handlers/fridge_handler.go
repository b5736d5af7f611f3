package handlers

import (
	"daidokoro-note/domain"
	"daidokoro-note/internal/api/presenters"
	"daidokoro-note/pkg/fridge"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		AddIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetSuggestions(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) AddIngredient(c *fiber.Ctx) error {
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.fridgeService.AddIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *fridgeHandler) DeleteIngredient(c *fiber.Ctx) error {
	if err := h.fridgeService.DeleteIngredient(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *fridgeHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.fridgeService.GetIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *fridgeHandler) GetSuggestions(c *fiber.Ctx) error {
	res, err := h.fridgeService.GetSuggestions(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
