package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// StringList is a JSON array of non-blank strings stored under one key.
type StringList struct {
	kv  KVRepository
	key string
	mu  sync.Mutex
}

func NewStringList(kv KVRepository, key string) *StringList {
	return &StringList{kv: kv, key: key}
}

func (l *StringList) List(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Modify runs fn over the current list and persists the result if fn reports
// a change.
func (l *StringList) Modify(ctx context.Context, fn func([]string) ([]string, bool)) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	values, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	next, changed := fn(values)
	if !changed {
		return values, nil
	}
	if err := checkStrings(next); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := l.kv.Set(ctx, l.key, data); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", l.key, err)
	}
	return next, nil
}

func (l *StringList) load(ctx context.Context) ([]string, error) {
	data, err := l.kv.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read %q: %w", l.key, err)
	}

	values, err := decodeArray[string](data)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptState, l.key, err)
	}
	if err := checkStrings(values); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptState, l.key, err)
	}
	return values, nil
}

func checkStrings(values []string) error {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("element %d is blank", i)
		}
	}
	return nil
}
