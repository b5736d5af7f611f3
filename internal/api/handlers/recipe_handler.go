package handlers

import (
	"daidokoro-note/domain"
	"daidokoro-note/internal/api/presenters"
	"daidokoro-note/pkg/history"
	"daidokoro-note/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		SearchByIngredients(c *fiber.Ctx) error
		GetRecipeRecommendations(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		MarkAsCooked(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService  recipe.RecipeService
		historyService history.HistoryService
		validator      *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, historyService history.HistoryService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:  recipeService,
		historyService: historyService,
		validator:      validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	filter := new(domain.RecipeFilter)

	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.GetRecipes(c.Context(), *filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// SearchByIngredients reads repeated ?ingredient= parameters.
func (h *recipeHandler) SearchByIngredients(c *fiber.Ctx) error {
	var names []string
	for _, v := range c.Context().QueryArgs().PeekMulti("ingredient") {
		names = append(names, string(v))
	}

	res, err := h.recipeService.SearchByIngredients(c.Context(), names)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeRecommendations(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeRecommendations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recipeHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recipeService.GetCategories(), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *recipeHandler) MarkAsCooked(c *fiber.Ctx) error {
	res, err := h.historyService.MarkAsCooked(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedMarkAsCooked, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessMarkAsCooked)
}
