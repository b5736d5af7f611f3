// Package kv is the persistent key-value layer the entity collections are
// stored in. Each key holds one whole JSON-serialized collection.
package kv

import (
	"context"
	"errors"
	"sync"
)

const (
	KeyRecipes           = "recipes"
	KeyFridge            = "fridge"
	KeyHistory           = "history"
	KeyIngredientHistory = "ingredient-history"
)

var (
	ErrNotFound     = errors.New("kv: not found")
	ErrCorruptState = errors.New("kv: corrupt stored state")
	ErrInvalidValue = errors.New("kv: invalid value")
)

type (
	KVRepository interface {
		// Get returns ErrNotFound when key has never been written.
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
		Ping(ctx context.Context) error
	}

	memoryKVRepository struct {
		mu   sync.RWMutex
		data map[string][]byte
	}
)

// NewMemoryKVRepository returns an isolated in-process store.
func NewMemoryKVRepository() KVRepository {
	return &memoryKVRepository{data: make(map[string][]byte)}
}

func (r *memoryKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (r *memoryKVRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.data[key] = stored
	return nil
}

func (r *memoryKVRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
