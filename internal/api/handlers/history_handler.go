package handlers

import (
	"daidokoro-note/domain"
	"daidokoro-note/internal/api/presenters"
	"daidokoro-note/pkg/history"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HistoryHandler interface {
		AddHistory(c *fiber.Ctx) error
		DeleteHistory(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		GetHistoryDetail(c *fiber.Ctx) error
		ConvertToRecipe(c *fiber.Ctx) error
	}

	historyHandler struct {
		historyService history.HistoryService
		validator      *validator.Validate
	}
)

func NewHistoryHandler(historyService history.HistoryService, validator *validator.Validate) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		validator:      validator,
	}
}

func (h *historyHandler) AddHistory(c *fiber.Ctx) error {
	req := new(domain.AddHistoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHistory, err)
	}

	res, err := h.historyService.AddHistory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddHistory)
}

func (h *historyHandler) DeleteHistory(c *fiber.Ctx) error {
	if err := h.historyService.DeleteHistory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteHistory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHistory)
}

func (h *historyHandler) GetHistory(c *fiber.Ctx) error {
	res, err := h.historyService.GetHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) GetHistoryDetail(c *fiber.Ctx) error {
	res, err := h.historyService.GetHistoryDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) ConvertToRecipe(c *fiber.Ctx) error {
	res, err := h.historyService.ConvertToRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedConvertToRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConvertToRecipe)
}
