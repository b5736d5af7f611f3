package fridge

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"daidokoro-note/pkg/kv"
	"slices"
	"time"

	"github.com/google/uuid"
)

type (
	FridgeRepository interface {
		GetIngredients(ctx context.Context) ([]entities.FridgeIngredient, error)
		GetIngredientByID(ctx context.Context, id string) (entities.FridgeIngredient, error)
		AddIngredient(ctx context.Context, name string) (entities.FridgeIngredient, error)
		DeleteIngredient(ctx context.Context, id string) error

		GetNameHistory(ctx context.Context) ([]string, error)
		RememberName(ctx context.Context, name string) ([]string, error)
	}

	fridgeRepository struct {
		ingredients *kv.Collection[entities.FridgeIngredient]
		names       *kv.StringList
	}
)

func NewFridgeRepository(store kv.KVRepository) FridgeRepository {
	return &fridgeRepository{
		ingredients: kv.NewCollection[entities.FridgeIngredient](store, kv.KeyFridge),
		names:       kv.NewStringList(store, kv.KeyIngredientHistory),
	}
}

func (r *fridgeRepository) GetIngredients(ctx context.Context) ([]entities.FridgeIngredient, error) {
	items, err := r.ingredients.List(ctx)
	return items, kv.Translate(err, domain.ErrFridgeIngredientNotFound)
}

func (r *fridgeRepository) GetIngredientByID(ctx context.Context, id string) (entities.FridgeIngredient, error) {
	item, err := r.ingredients.Get(ctx, id)
	return item, kv.Translate(err, domain.ErrFridgeIngredientNotFound)
}

// AddIngredient stores name as given. Duplicate names are allowed.
func (r *fridgeRepository) AddIngredient(ctx context.Context, name string) (entities.FridgeIngredient, error) {
	item := entities.FridgeIngredient{
		ID:      uuid.NewString(),
		Name:    name,
		AddedAt: time.Now().UTC(),
	}
	if err := r.ingredients.Prepend(ctx, item); err != nil {
		return entities.FridgeIngredient{}, kv.Translate(err, domain.ErrFridgeIngredientNotFound)
	}
	return item, nil
}

func (r *fridgeRepository) DeleteIngredient(ctx context.Context, id string) error {
	return kv.Translate(r.ingredients.Remove(ctx, id), domain.ErrFridgeIngredientNotFound)
}

// GetNameHistory returns previously entered names, most recent first.
func (r *fridgeRepository) GetNameHistory(ctx context.Context) ([]string, error) {
	names, err := r.names.List(ctx)
	return names, kv.Translate(err, domain.ErrFridgeIngredientNotFound)
}

// RememberName puts a new name at the front of the history, keeping at most
// domain.MaxIngredientHistory entries. A name already present is left where
// it is and nothing is written.
func (r *fridgeRepository) RememberName(ctx context.Context, name string) ([]string, error) {
	names, err := r.names.Modify(ctx, func(current []string) ([]string, bool) {
		if slices.Contains(current, name) {
			return current, false
		}
		next := append([]string{name}, current...)
		if len(next) > domain.MaxIngredientHistory {
			next = next[:domain.MaxIngredientHistory]
		}
		return next, true
	})
	return names, kv.Translate(err, domain.ErrFridgeIngredientNotFound)
}
