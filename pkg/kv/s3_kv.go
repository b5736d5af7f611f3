package kv

import (
	"context"
	"daidokoro-note/internal/utils/storage"
	"errors"
	"path"
)

type s3KVRepository struct {
	s3     storage.AwsS3
	prefix string
}

// NewS3KVRepository keeps each key as the object <prefix>/<key>.json.
func NewS3KVRepository(s3 storage.AwsS3, prefix string) KVRepository {
	return &s3KVRepository{s3: s3, prefix: prefix}
}

func (r *s3KVRepository) objectKey(key string) string {
	return path.Join(r.prefix, key+".json")
}

func (r *s3KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.s3.GetObject(ctx, r.objectKey(key))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *s3KVRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.s3.PutObject(ctx, r.objectKey(key), value, "application/json")
}

func (r *s3KVRepository) Ping(ctx context.Context) error {
	return r.s3.HeadBucket(ctx)
}
