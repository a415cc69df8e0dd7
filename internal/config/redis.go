package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when addr is empty or the server does not
// answer a ping. Callers fall back to in-process state in that case.
func ConnectRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		Logger.Warn("REDIS_ADDR not set, notification dedup stays in memory")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		Logger.WithError(err).Error("Could not connect to Redis")
		_ = rdb.Close()
		return nil
	}

	Logger.WithField("addr", addr).Info("Connected to Redis")
	return rdb
}
