package recipe

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"daidokoro-note/pkg/kv"
	"time"

	"github.com/google/uuid"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe entities.Recipe) (entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, mutate func(*entities.Recipe)) (entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		IncrementCookedCount(ctx context.Context, id string) (entities.Recipe, error)
	}

	recipeRepository struct {
		recipes *kv.Collection[entities.Recipe]
	}
)

func NewRecipeRepository(store kv.KVRepository) RecipeRepository {
	return &recipeRepository{
		recipes: kv.NewCollection[entities.Recipe](store, kv.KeyRecipes),
	}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	recipes, err := r.recipes.List(ctx)
	return recipes, kv.Translate(err, domain.ErrRecipeNotFound)
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (entities.Recipe, error) {
	recipe, err := r.recipes.Get(ctx, id)
	return recipe, kv.Translate(err, domain.ErrRecipeNotFound)
}

// CreateRecipe assigns a fresh ID and creation time, zeroes the cooked count
// and stores the recipe at the front of the catalog.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe entities.Recipe) (entities.Recipe, error) {
	recipe.ID = uuid.NewString()
	recipe.CreatedAt = time.Now().UTC()
	recipe.CookedCount = 0
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	if recipe.Steps == nil {
		recipe.Steps = []string{}
	}
	if recipe.Images == nil {
		recipe.Images = []string{}
	}

	if err := r.recipes.Prepend(ctx, recipe); err != nil {
		return entities.Recipe{}, kv.Translate(err, domain.ErrRecipeNotFound)
	}
	return recipe, nil
}

// UpdateRecipe applies mutate to the stored recipe. The creation time and
// cooked count cannot be changed through it.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id string, mutate func(*entities.Recipe)) (entities.Recipe, error) {
	recipe, err := r.recipes.Update(ctx, id, func(recipe *entities.Recipe) {
		createdAt, cooked := recipe.CreatedAt, recipe.CookedCount
		mutate(recipe)
		recipe.CreatedAt, recipe.CookedCount = createdAt, cooked
	})
	return recipe, kv.Translate(err, domain.ErrRecipeNotFound)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return kv.Translate(r.recipes.Remove(ctx, id), domain.ErrRecipeNotFound)
}

func (r *recipeRepository) IncrementCookedCount(ctx context.Context, id string) (entities.Recipe, error) {
	recipe, err := r.recipes.Update(ctx, id, func(recipe *entities.Recipe) {
		recipe.CookedCount++
	})
	return recipe, kv.Translate(err, domain.ErrRecipeNotFound)
}
