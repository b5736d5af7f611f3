package kv

import (
	"daidokoro-note/domain"
	"errors"
	"fmt"
)

// Translate maps store errors onto domain errors. A missing record becomes
// notFound. Corrupt data and rejected records keep the kv sentinel in the
// chain next to the domain one.
func Translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return notFound
	case errors.Is(err, ErrCorruptState):
		return fmt.Errorf("%w: %w", domain.ErrCorruptState, err)
	case errors.Is(err, ErrInvalidValue):
		return fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	default:
		return err
	}
}
