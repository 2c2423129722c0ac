package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// initRedis подключается к Redis. Пустой URL отключает кеш и блокировки, тогда возвращается nil.
// Недоступный при старте Redis не мешает запуску: кеш деградирует до чтения из базы.
func initRedis(ctx context.Context, redisURL string, logger *zap.Logger) (*redis.Client, error) {
	if redisURL == "" {
		logger.Info("redis is not configured, order cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis is unavailable, continuing without warm cache", zap.Error(err))
		return rdb, nil
	}
	logger.Info("connected to redis", zap.String("addr", opts.Addr))

	return rdb, nil
}
