package kv

import (
	"bytes"
	"context"
	"daidokoro-note/internal/utils"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

type Identifiable interface {
	GetID() string
}

// Collection is an ordered list of records persisted as a single JSON array
// under one key. Every mutation is a read-modify-write of the whole array,
// serialized by mu. Writers in other processes are not coordinated: the last
// write wins.
type Collection[T Identifiable] struct {
	kv  KVRepository
	key string
	mu  sync.Mutex
}

func NewCollection[T Identifiable](kv KVRepository, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// List returns the stored records, newest first. An absent key is an empty
// collection.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.GetID() == id {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Prepend stores item at the front of the collection.
func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	if err := validateRecord(item); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	items = append([]T{item}, items...)
	return c.save(ctx, items)
}

// Update applies mutate to the first record with id. Nothing is written when
// id is absent.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	for i := range items {
		if items[i].GetID() != id {
			continue
		}
		updated := items[i]
		mutate(&updated)
		if updated.GetID() != id {
			return zero, fmt.Errorf("%w: identifier cannot change", ErrInvalidValue)
		}
		if err := validateRecord(updated); err != nil {
			return zero, err
		}
		items[i] = updated
		if err := c.save(ctx, items); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, ErrNotFound
}

// Remove drops every record with id. Nothing is written when none matched.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return ErrNotFound
	}
	return c.save(ctx, filtered)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %q: %w", c.key, err)
	}

	items, err := decodeArray[T](data)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptState, c.key, err)
	}
	for i, item := range items {
		if err := validateRecord(item); err != nil {
			return nil, fmt.Errorf("%w: key %q: element %d: %v", ErrCorruptState, c.key, i, err)
		}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := c.kv.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.key, err)
	}
	return nil
}

// decodeArray accepts exactly one JSON array with no unknown fields and no
// trailing data. A stored null decodes to an empty slice.
func decodeArray[T any](data []byte) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var items []T
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after array")
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func validateRecord(item any) error {
	if err := utils.Validate.Struct(item); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}
