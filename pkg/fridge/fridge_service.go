package fridge

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type (
	FridgeService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.FridgeIngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredients(ctx context.Context) (domain.FridgeListResponse, error)
		GetSuggestions(ctx context.Context, query string) (domain.SuggestionResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{
		fridgeRepository: fridgeRepository,
	}
}

// AddIngredient writes the ingredient first and the name history second. If
// the second write fails the ingredient stays stored and the error is returned.
func (s *fridgeService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.FridgeIngredientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FridgeIngredientResponse{}, domain.ErrEmptyIngredientName
	}

	item, err := s.fridgeRepository.AddIngredient(ctx, name)
	if err != nil {
		return domain.FridgeIngredientResponse{}, err
	}

	if _, err := s.fridgeRepository.RememberName(ctx, name); err != nil {
		log.Errorf("fridge ingredient %s stored but name history not updated: %v", item.ID, err)
		return domain.FridgeIngredientResponse{}, err
	}

	return toIngredientResponse(item), nil
}

func (s *fridgeService) DeleteIngredient(ctx context.Context, id string) error {
	return s.fridgeRepository.DeleteIngredient(ctx, id)
}

func (s *fridgeService) GetIngredients(ctx context.Context) (domain.FridgeListResponse, error) {
	items, err := s.fridgeRepository.GetIngredients(ctx)
	if err != nil {
		return domain.FridgeListResponse{}, err
	}

	res := make([]domain.FridgeIngredientResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toIngredientResponse(item))
	}
	return domain.FridgeListResponse{
		Items: res,
		Total: len(res),
	}, nil
}

// GetSuggestions returns up to domain.MaxSuggestions remembered names that
// contain query, ignoring case. An empty query returns the most recent ones.
func (s *fridgeService) GetSuggestions(ctx context.Context, query string) (domain.SuggestionResponse, error) {
	names, err := s.fridgeRepository.GetNameHistory(ctx)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	res := make([]string, 0, domain.MaxSuggestions)
	for _, name := range names {
		if len(res) == domain.MaxSuggestions {
			break
		}
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			res = append(res, name)
		}
	}
	return domain.SuggestionResponse{Names: res}, nil
}

func toIngredientResponse(item entities.FridgeIngredient) domain.FridgeIngredientResponse {
	return domain.FridgeIngredientResponse{
		ID:      item.ID,
		Name:    item.Name,
		AddedAt: item.AddedAt,
	}
}
