package domain

import (
	"errors"
	"time"
)

const (
	MaxIngredientHistory = 100
	MaxSuggestions       = 10
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessGetSuggestions   = "ingredient suggestions retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedGetSuggestions   = "failed to retrieve ingredient suggestions"

	ErrFridgeIngredientNotFound = errors.New("fridge ingredient not found")
	ErrEmptyIngredientName      = errors.New("ingredient name is empty")
)

type (
	AddIngredientRequest struct {
		Name string `json:"name" validate:"notblank"`
	}

	FridgeIngredientResponse struct {
		ID      string    `json:"id"`
		Name    string    `json:"name"`
		AddedAt time.Time `json:"added_at"`
	}

	FridgeListResponse struct {
		Items []FridgeIngredientResponse `json:"items"`
		Total int                        `json:"total"`
	}

	SuggestionResponse struct {
		Names []string `json:"names"`
	}
)
