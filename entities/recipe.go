// File: entities/recipe.go
package entities

import (
	"time"
)

type Recipe struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Images      []string  `json:"images" validate:"max=4"`
	Source      string    `json:"source" validate:"oneof=x book original history"`
	SourceURL   string    `json:"source_url,omitempty"`
	Category    string    `json:"category" validate:"oneof=main side soup salad pasta rice curry noodle other"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
	CookedCount int       `json:"cooked_count" validate:"min=0"`
}

func (r Recipe) GetID() string { return r.ID }
