package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/gin-blog/config"
)

// Open 启用时连接并 Ping Redis，否则返回 Noop。返回的关闭函数不为 nil
func Open(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (Store, func() error, error) {
	if !cfg.Enabled {
		return Noop{}, func() error { return nil }, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return NewRedisStore(client, ttl), client.Close, nil
}
