package entities

import (
	"time"
)

// CookingHistory is one cooked-meal log entry. RecipeID is a weak reference:
// the recipe may have been deleted since.
type CookingHistory struct {
	ID          string    `json:"id" validate:"required"`
	RecipeID    string    `json:"recipe_id,omitempty"`
	Title       string    `json:"title" validate:"required"`
	Ingredients []string  `json:"ingredients,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
	Images      []string  `json:"images,omitempty" validate:"max=4"`
	Date        time.Time `json:"date" validate:"required"`
	Note        string    `json:"note,omitempty"`
}

func (h CookingHistory) GetID() string { return h.ID }
