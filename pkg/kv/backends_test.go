package kv

import (
	"context"
	"daidokoro-note/entities"
	"daidokoro-note/internal/utils/storage"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteKV(t *testing.T) KVRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.KVEntry{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewGormKVRepository(db)
}

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	f.objects[key] = append([]byte(nil), body...)
	f.types[key] = contentType
	return nil
}

func (f *fakeS3) GetObject(ctx context.Context, key string) ([]byte, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return body, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context) error { return nil }

func TestBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) KVRepository{
		"memory": func(t *testing.T) KVRepository { return NewMemoryKVRepository() },
		"gorm":   newSQLiteKV,
		"s3":     func(t *testing.T) KVRepository { return NewS3KVRepository(newFakeS3(), "daidokoro") },
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := build(t)

			require.NoError(t, store.Ping(ctx))

			_, err := store.Get(ctx, KeyRecipes)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, KeyRecipes, []byte(`[]`)))
			require.NoError(t, store.Set(ctx, KeyRecipes, []byte(`[{"id":"x"}]`)))

			got, err := store.Get(ctx, KeyRecipes)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"x"}]`, string(got))

			_, err = store.Get(ctx, KeyFridge)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestS3KVObjectLayout(t *testing.T) {
	s3 := newFakeS3()
	store := NewS3KVRepository(s3, "users/me")

	require.NoError(t, store.Set(context.Background(), KeyIngredientHistory, []byte(`["卵"]`)))

	assert.Contains(t, s3.objects, "users/me/ingredient-history.json")
	assert.Equal(t, "application/json", s3.types["users/me/ingredient-history.json"])
}
