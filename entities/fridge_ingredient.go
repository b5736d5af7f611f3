package entities

import (
	"time"
)

type FridgeIngredient struct {
	ID      string    `json:"id" validate:"required"`
	Name    string    `json:"name" validate:"required"`
	AddedAt time.Time `json:"added_at" validate:"required"`
}

func (f FridgeIngredient) GetID() string { return f.ID }
