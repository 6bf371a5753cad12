package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/infrastructure/migrate"
	"github.com/popeskul/wa-broadcast/internal/repository"
)

// newRepository opens the snapshot store selected by storage.driver. The
// returned func releases its connections.
func newRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Error("Failed to close Redis connection", zap.Error(err))
			}
		}
		return repository.NewRedisRepository(client, cfg.Storage.KeyPrefix), closeFn, nil

	case config.StorageDriverPostgres:
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Storage.MigrationsPath,
		}, logger)
		if err := runner.Run(); err != nil {
			return nil, nil, err
		}

		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.GetDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", zap.Error(err))
			}
		}
		return repository.NewPostgresRepository(db), closeFn, nil

	default:
		repo, err := repository.NewFileRepository(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
