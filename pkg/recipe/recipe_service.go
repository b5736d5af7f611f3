package recipe

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"daidokoro-note/internal/utils"
	"daidokoro-note/pkg/fridge"
	"daidokoro-note/pkg/matcher"
	"strings"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeDetail(ctx context.Context, id string) (domain.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) (domain.RecipeListResponse, error)
		SearchByIngredients(ctx context.Context, names []string) (domain.RecipeListResponse, error)
		GetRecipeRecommendations(ctx context.Context) (domain.RecipeRecommendationResponse, error)
		GetCategories() []domain.Category
	}

	recipeService struct {
		recipeRepository RecipeRepository
		fridgeRepository fridge.FridgeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fridgeRepository fridge.FridgeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		fridgeRepository: fridgeRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Recipe{}, domain.ErrRecipeTitleRequired
	}
	if _, ok := domain.CategoryLabels[req.Category]; !ok {
		return domain.Recipe{}, domain.ErrInvalidCategory
	}
	if len(req.Images) > domain.MaxRecipeImages {
		return domain.Recipe{}, domain.ErrTooManyImages
	}

	recipe, err := s.recipeRepository.CreateRecipe(ctx, entities.Recipe{
		Title:       title,
		Ingredients: utils.CleanLines(req.Ingredients),
		Steps:       utils.CleanLines(req.Steps),
		Images:      req.Images,
		Source:      req.Source,
		SourceURL:   strings.TrimSpace(req.SourceURL),
		Category:    req.Category,
	})
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

// UpdateRecipe is a shallow patch: each supplied field replaces the stored
// value and absent fields are kept.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.Recipe, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.Recipe{}, domain.ErrRecipeTitleRequired
	}
	if req.Category != nil {
		if _, ok := domain.CategoryLabels[*req.Category]; !ok {
			return domain.Recipe{}, domain.ErrInvalidCategory
		}
	}
	if req.Images != nil && len(*req.Images) > domain.MaxRecipeImages {
		return domain.Recipe{}, domain.ErrTooManyImages
	}

	recipe, err := s.recipeRepository.UpdateRecipe(ctx, id, func(r *entities.Recipe) {
		if req.Title != nil {
			r.Title = strings.TrimSpace(*req.Title)
		}
		if req.Ingredients != nil {
			r.Ingredients = utils.CleanLines(*req.Ingredients)
		}
		if req.Steps != nil {
			r.Steps = utils.CleanLines(*req.Steps)
		}
		if req.Images != nil {
			r.Images = *req.Images
		}
		if req.Source != nil {
			r.Source = *req.Source
		}
		if req.SourceURL != nil {
			r.SourceURL = strings.TrimSpace(*req.SourceURL)
		}
		if req.Category != nil {
			r.Category = *req.Category
		}
	})
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

// DeleteRecipe leaves cooking history entries that reference the recipe in
// place.
func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

// GetRecipes filters the catalog by category and then by free text. The
// "recommended" category keeps only recipes matching the fridge, best first.
func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	switch filter.Category {
	case "", domain.CategoryAll:
	case domain.CategoryRecommended:
		names, err := s.fridgeNames(ctx)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		recipes = matcher.Recommend(recipes, names)
	default:
		if _, ok := domain.CategoryLabels[filter.Category]; !ok {
			return domain.RecipeListResponse{}, domain.ErrInvalidCategory
		}
		recipes = matcher.FilterByCategory(recipes, filter.Category)
	}

	recipes = matcher.FilterByText(recipes, strings.TrimSpace(filter.Query))
	return toListResponse(recipes), nil
}

func (s *recipeService) SearchByIngredients(ctx context.Context, names []string) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return toListResponse(matcher.FilterByIngredients(recipes, names)), nil
}

// GetRecipeRecommendations ranks the catalog against the fridge. An empty
// fridge short-circuits to an empty list.
func (s *recipeService) GetRecipeRecommendations(ctx context.Context) (domain.RecipeRecommendationResponse, error) {
	names, err := s.fridgeNames(ctx)
	if err != nil {
		return domain.RecipeRecommendationResponse{}, err
	}
	if len(names) == 0 {
		return domain.RecipeRecommendationResponse{
			Recipes:      []domain.RecipeRecommendation{},
			TotalRecipes: 0,
			FridgeItems:  0,
		}, nil
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeRecommendationResponse{}, err
	}

	ranked := matcher.Rank(recipes, names)
	res := make([]domain.RecipeRecommendation, 0, len(ranked))
	for _, m := range ranked {
		res = append(res, domain.RecipeRecommendation{
			Recipe:     ToRecipeResponse(m.Recipe),
			MatchCount: m.MatchCount,
		})
	}

	return domain.RecipeRecommendationResponse{
		Recipes:      res,
		TotalRecipes: len(res),
		FridgeItems:  len(names),
	}, nil
}

func (s *recipeService) GetCategories() []domain.Category {
	categories := make([]domain.Category, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, domain.Category{Value: c, Label: domain.CategoryLabels[c]})
	}
	return categories
}

func (s *recipeService) fridgeNames(ctx context.Context) ([]string, error) {
	items, err := s.fridgeRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

func ToRecipeResponse(recipe entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:            recipe.ID,
		Title:         recipe.Title,
		Ingredients:   nonNil(recipe.Ingredients),
		Steps:         nonNil(recipe.Steps),
		Images:        nonNil(recipe.Images),
		Source:        recipe.Source,
		SourceURL:     recipe.SourceURL,
		Category:      recipe.Category,
		CategoryLabel: domain.CategoryLabels[recipe.Category],
		CreatedAt:     recipe.CreatedAt,
		CookedCount:   recipe.CookedCount,
	}
}

func toListResponse(recipes []entities.Recipe) domain.RecipeListResponse {
	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, ToRecipeResponse(r))
	}
	return domain.RecipeListResponse{
		Recipes: res,
		Total:   len(res),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
