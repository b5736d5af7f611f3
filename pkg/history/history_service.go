package history

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"daidokoro-note/internal/utils"
	"daidokoro-note/pkg/recipe"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	HistoryService interface {
		AddHistory(ctx context.Context, req domain.AddHistoryRequest) (domain.CookingHistoryResponse, error)
		MarkAsCooked(ctx context.Context, recipeID string) (domain.CookingHistoryResponse, error)
		DeleteHistory(ctx context.Context, id string) error
		GetHistory(ctx context.Context) (domain.CookingHistoryListResponse, error)
		GetHistoryDetail(ctx context.Context, id string) (domain.CookingHistoryResponse, error)
		ConvertToRecipe(ctx context.Context, id string) (domain.Recipe, error)
	}

	historyService struct {
		historyRepository HistoryRepository
		recipeRepository  recipe.RecipeRepository
		now               func() time.Time
	}
)

func NewHistoryService(historyRepository HistoryRepository, recipeRepository recipe.RecipeRepository) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		recipeRepository:  recipeRepository,
		now:               time.Now,
	}
}

// AddHistory records a cooked meal. With RecipeID set the entry copies the
// recipe's current title and the recipe's cooked count goes up by one; the
// entry is written before the count. Without RecipeID the entry is free-form
// and carries its own title, ingredients and steps.
func (s *historyService) AddHistory(ctx context.Context, req domain.AddHistoryRequest) (domain.CookingHistoryResponse, error) {
	date, err := s.parseDate(req.Date)
	if err != nil {
		return domain.CookingHistoryResponse{}, err
	}

	entry := entities.CookingHistory{
		Date: date,
		Note: strings.TrimSpace(req.Note),
	}

	if req.RecipeID != "" {
		r, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
		if err != nil {
			return domain.CookingHistoryResponse{}, err
		}
		entry.RecipeID = r.ID
		entry.Title = r.Title
	} else {
		entry.Title = strings.TrimSpace(req.Title)
		if entry.Title == "" {
			return domain.CookingHistoryResponse{}, domain.ErrHistoryTitleRequired
		}
		entry.Ingredients = emptyToNil(utils.CleanLines(req.Ingredients))
		entry.Steps = emptyToNil(utils.CleanLines(req.Steps))
		entry.Images = emptyToNil(req.Images)
	}

	entry, err = s.historyRepository.CreateHistory(ctx, entry)
	if err != nil {
		return domain.CookingHistoryResponse{}, err
	}

	available := false
	if entry.RecipeID != "" {
		available = true
		if _, err := s.recipeRepository.IncrementCookedCount(ctx, entry.RecipeID); err != nil {
			if !errors.Is(err, domain.ErrRecipeNotFound) {
				log.Errorf("history entry %s stored but cooked count of recipe %s not updated: %v", entry.ID, entry.RecipeID, err)
				return domain.CookingHistoryResponse{}, err
			}
			// deleted between the lookup and the increment
			log.Warnf("recipe %s vanished before its cooked count was updated", entry.RecipeID)
			available = false
		}
	}

	return toHistoryResponse(entry, available), nil
}

// MarkAsCooked is AddHistory for a recipe, dated now.
func (s *historyService) MarkAsCooked(ctx context.Context, recipeID string) (domain.CookingHistoryResponse, error) {
	if recipeID == "" {
		return domain.CookingHistoryResponse{}, domain.ErrRecipeNotFound
	}
	return s.AddHistory(ctx, domain.AddHistoryRequest{RecipeID: recipeID})
}

func (s *historyService) DeleteHistory(ctx context.Context, id string) error {
	return s.historyRepository.DeleteHistory(ctx, id)
}

// GetHistory lists entries newest first and flags those whose recipe no
// longer exists.
func (s *historyService) GetHistory(ctx context.Context) (domain.CookingHistoryListResponse, error) {
	entries, err := s.historyRepository.GetHistory(ctx)
	if err != nil {
		return domain.CookingHistoryListResponse{}, err
	}
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.CookingHistoryListResponse{}, err
	}

	known := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		known[r.ID] = struct{}{}
	}

	res := make([]domain.CookingHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		_, ok := known[entry.RecipeID]
		res = append(res, toHistoryResponse(entry, entry.RecipeID != "" && ok))
	}
	return domain.CookingHistoryListResponse{
		Entries: res,
		Total:   len(res),
	}, nil
}

func (s *historyService) GetHistoryDetail(ctx context.Context, id string) (domain.CookingHistoryResponse, error) {
	entry, err := s.historyRepository.GetHistoryByID(ctx, id)
	if err != nil {
		return domain.CookingHistoryResponse{}, err
	}

	available := false
	if entry.RecipeID != "" {
		_, err := s.recipeRepository.GetRecipeByID(ctx, entry.RecipeID)
		switch {
		case err == nil:
			available = true
		case !errors.Is(err, domain.ErrRecipeNotFound):
			return domain.CookingHistoryResponse{}, err
		}
	}
	return toHistoryResponse(entry, available), nil
}

// ConvertToRecipe turns a free-form entry into a new recipe in the "other"
// category. The entry needs both ingredients and steps and stays in the
// history afterwards.
func (s *historyService) ConvertToRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	entry, err := s.historyRepository.GetHistoryByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if len(entry.Ingredients) == 0 || len(entry.Steps) == 0 {
		return domain.Recipe{}, domain.ErrHistoryNotConvertible
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, entities.Recipe{
		Title:       entry.Title,
		Ingredients: entry.Ingredients,
		Steps:       entry.Steps,
		Images:      entry.Images,
		Source:      domain.SourceHistory,
		Category:    domain.CategoryOther,
	})
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipe.ToRecipeResponse(created), nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. Empty means now.
func (s *historyService) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now().UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, domain.ErrInvalidCookedDate
}

func toHistoryResponse(entry entities.CookingHistory, recipeAvailable bool) domain.CookingHistoryResponse {
	return domain.CookingHistoryResponse{
		ID:              entry.ID,
		RecipeID:        entry.RecipeID,
		RecipeAvailable: recipeAvailable,
		Title:           entry.Title,
		Ingredients:     entry.Ingredients,
		Steps:           entry.Steps,
		Images:          entry.Images,
		Date:            entry.Date,
		Note:            entry.Note,
	}
}

func emptyToNil(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}
