package bootstrap

import (
	"context"
	"time"

	"healthsched/internal/infra/lock"
	"healthsched/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewSlotLocker,
			fx.As(new(lock.SlotLocker)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewSlotLocker(client *redis.Client, cfg config.Config) *lock.RedisSlotLocker {
	return lock.NewRedisSlotLocker(client, cfg.Redis.LockTTL)
}
