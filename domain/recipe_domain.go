package domain

import (
	"errors"
	"time"
)

const (
	SourceX        = "x"
	SourceBook     = "book"
	SourceOriginal = "original"
	SourceHistory  = "history"

	CategoryMain   = "main"
	CategorySide   = "side"
	CategorySoup   = "soup"
	CategorySalad  = "salad"
	CategoryPasta  = "pasta"
	CategoryRice   = "rice"
	CategoryCurry  = "curry"
	CategoryNoodle = "noodle"
	CategoryOther  = "other"

	// Pseudo-categories accepted by the recipe listing filter.
	CategoryAll         = "all"
	CategoryRecommended = "recommended"

	MaxRecipeImages = 4
)

// Categories lists the real categories in display order.
var Categories = []string{
	CategoryMain, CategorySide, CategorySoup, CategorySalad, CategoryPasta,
	CategoryRice, CategoryCurry, CategoryNoodle, CategoryOther,
}

var CategoryLabels = map[string]string{
	CategoryMain:   "メイン料理",
	CategorySide:   "副菜",
	CategorySoup:   "スープ・汁物",
	CategorySalad:  "サラダ",
	CategoryPasta:  "パスタ",
	CategoryRice:   "ご飯もの",
	CategoryCurry:  "カレー",
	CategoryNoodle: "麺類",
	CategoryOther:  "その他",
}

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessCreateRecipe       = "recipe created successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessMarkAsCooked       = "recipe marked as cooked successfully"
	MessageSuccessGetRecommendations = "success get recipe recommendations"
	MessageSuccessGetCategories      = "success get recipe categories"

	MessageFailedGetRecipes         = "failed to get recipes"
	MessageFailedGetRecipeDetail    = "failed to get recipe detail"
	MessageFailedCreateRecipe       = "failed to create recipe"
	MessageFailedUpdateRecipe       = "failed to update recipe"
	MessageFailedDeleteRecipe       = "failed to delete recipe"
	MessageFailedMarkAsCooked       = "failed to mark recipe as cooked"
	MessageFailedGetRecommendations = "failed to get recipe recommendations"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrInvalidCategory     = errors.New("invalid recipe category")
	ErrTooManyImages       = errors.New("a recipe holds at most 4 images")
	ErrRecipeTitleRequired = errors.New("recipe title is required")
)

type (
	CreateRecipeRequest struct {
		Title       string   `json:"title" validate:"notblank"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
		Images      []string `json:"images" validate:"max=4,dive,datauri"`
		Source      string   `json:"source" validate:"required,oneof=x book original history"`
		SourceURL   string   `json:"source_url,omitempty" validate:"omitempty,url"`
		Category    string   `json:"category" validate:"required,oneof=main side soup salad pasta rice curry noodle other"`
	}

	// UpdateRecipeRequest is a shallow patch: nil fields are left untouched,
	// supplied fields replace the stored value entirely.
	UpdateRecipeRequest struct {
		Title       *string   `json:"title,omitempty" validate:"omitempty,notblank"`
		Ingredients *[]string `json:"ingredients,omitempty"`
		Steps       *[]string `json:"steps,omitempty"`
		Images      *[]string `json:"images,omitempty" validate:"omitempty,max=4,dive,datauri"`
		Source      *string   `json:"source,omitempty" validate:"omitempty,oneof=x book original history"`
		SourceURL   *string   `json:"source_url,omitempty" validate:"omitempty"`
		Category    *string   `json:"category,omitempty" validate:"omitempty,oneof=main side soup salad pasta rice curry noodle other"`
	}

	RecipeFilter struct {
		Category string `query:"category"`
		Query    string `query:"q"`
	}

	Recipe struct {
		ID            string    `json:"id"`
		Title         string    `json:"title"`
		Ingredients   []string  `json:"ingredients"`
		Steps         []string  `json:"steps"`
		Images        []string  `json:"images"`
		Source        string    `json:"source"`
		SourceURL     string    `json:"source_url,omitempty"`
		Category      string    `json:"category"`
		CategoryLabel string    `json:"category_label"`
		CreatedAt     time.Time `json:"created_at"`
		CookedCount   int       `json:"cooked_count"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"total"`
	}

	RecipeRecommendation struct {
		Recipe
		MatchCount int `json:"match_count"`
	}

	RecipeRecommendationResponse struct {
		Recipes      []RecipeRecommendation `json:"recipes"`
		TotalRecipes int                    `json:"total_recipes"`
		FridgeItems  int                    `json:"fridge_items"`
	}

	Category struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
)
