package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisWriteTimeout = 2 * time.Second
	redisReadTimeout  = 2 * time.Second
)

type redisSnapshotRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository stores each snapshot under the key <prefix>:snapshot:<name>.
func NewRedisRepository(client *redis.Client, prefix string) Repository {
	return &repositoryImpl{
		ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		snapshot: NewRedisSnapshotRepository(client, prefix),
	}
}

func NewRedisSnapshotRepository(client *redis.Client, prefix string) SnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *redisSnapshotRepository) key(name string) string {
	return fmt.Sprintf("%s:snapshot:%s", r.prefix, name)
}

// Save overwrites the key with a single SET, which Redis applies atomically.
func (r *redisSnapshotRepository) Save(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisWriteTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *redisSnapshotRepository) Load(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisReadTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}
