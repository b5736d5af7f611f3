package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddHistory      = "cooking history recorded successfully"
	MessageSuccessDeleteHistory   = "cooking history deleted successfully"
	MessageSuccessGetHistory      = "success get cooking history"
	MessageSuccessConvertToRecipe = "cooking history converted to recipe"
	MessageFailedAddHistory       = "failed to record cooking history"
	MessageFailedDeleteHistory    = "failed to delete cooking history"
	MessageFailedGetHistory       = "failed to get cooking history"
	MessageFailedConvertToRecipe  = "failed to convert cooking history to recipe"

	ErrHistoryNotFound       = errors.New("cooking history not found")
	ErrHistoryNotConvertible = errors.New("cooking history needs ingredients and steps to become a recipe")
	ErrInvalidCookedDate     = errors.New("invalid cooked date")
	ErrHistoryTitleRequired  = errors.New("title is required for a free-form entry")
)

type (
	// AddHistoryRequest records either a recipe-based entry (RecipeID set) or
	// a free-form one (Title required).
	AddHistoryRequest struct {
		RecipeID    string   `json:"recipe_id,omitempty"`
		Title       string   `json:"title,omitempty"`
		Ingredients []string `json:"ingredients,omitempty"`
		Steps       []string `json:"steps,omitempty"`
		Images      []string `json:"images,omitempty" validate:"max=4,dive,datauri"`
		Date        string   `json:"date,omitempty"`
		Note        string   `json:"note,omitempty"`
	}

	CookingHistoryResponse struct {
		ID              string    `json:"id"`
		RecipeID        string    `json:"recipe_id,omitempty"`
		RecipeAvailable bool      `json:"recipe_available"`
		Title           string    `json:"title"`
		Ingredients     []string  `json:"ingredients,omitempty"`
		Steps           []string  `json:"steps,omitempty"`
		Images          []string  `json:"images,omitempty"`
		Date            time.Time `json:"date"`
		Note            string    `json:"note,omitempty"`
	}

	CookingHistoryListResponse struct {
		Entries []CookingHistoryResponse `json:"entries"`
		Total   int                      `json:"total"`
	}
)
