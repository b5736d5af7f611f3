package history

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/entities"
	"daidokoro-note/pkg/kv"

	"github.com/google/uuid"
)

type (
	HistoryRepository interface {
		GetHistory(ctx context.Context) ([]entities.CookingHistory, error)
		GetHistoryByID(ctx context.Context, id string) (entities.CookingHistory, error)
		CreateHistory(ctx context.Context, entry entities.CookingHistory) (entities.CookingHistory, error)
		DeleteHistory(ctx context.Context, id string) error
	}

	historyRepository struct {
		entries *kv.Collection[entities.CookingHistory]
	}
)

func NewHistoryRepository(store kv.KVRepository) HistoryRepository {
	return &historyRepository{
		entries: kv.NewCollection[entities.CookingHistory](store, kv.KeyHistory),
	}
}

func (r *historyRepository) GetHistory(ctx context.Context) ([]entities.CookingHistory, error) {
	entries, err := r.entries.List(ctx)
	return entries, kv.Translate(err, domain.ErrHistoryNotFound)
}

func (r *historyRepository) GetHistoryByID(ctx context.Context, id string) (entities.CookingHistory, error) {
	entry, err := r.entries.Get(ctx, id)
	return entry, kv.Translate(err, domain.ErrHistoryNotFound)
}

func (r *historyRepository) CreateHistory(ctx context.Context, entry entities.CookingHistory) (entities.CookingHistory, error) {
	entry.ID = uuid.NewString()
	if err := r.entries.Prepend(ctx, entry); err != nil {
		return entities.CookingHistory{}, kv.Translate(err, domain.ErrHistoryNotFound)
	}
	return entry, nil
}

func (r *historyRepository) DeleteHistory(ctx context.Context, id string) error {
	return kv.Translate(r.entries.Remove(ctx, id), domain.ErrHistoryNotFound)
}
