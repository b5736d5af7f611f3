package kv

import (
	"context"
	"daidokoro-note/entities"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormKVRepository struct {
	db *gorm.DB
}

// NewGormKVRepository stores every key as one row of kv_entries. The table
// must exist; see cmd/database/migrate.
func NewGormKVRepository(db *gorm.DB) KVRepository {
	return &gormKVRepository{db: db}
}

func (r *gormKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var entry entities.KVEntry
	if err := r.db.WithContext(ctx).Where(&entities.KVEntry{Key: key}).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (r *gormKVRepository) Set(ctx context.Context, key string, value []byte) error {
	entry := entities.KVEntry{
		Key:   key,
		Value: string(value),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *gormKVRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
