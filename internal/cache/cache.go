// Package cache Redis 读缓存：按 slug 缓存文章，按文章缓存反应计数
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/gin-blog/internal/model"
)

// Store 服务层使用的缓存。未命中与 Redis 出错对调用方没有区别，以数据库为准
type Store interface {
	GetPost(ctx context.Context, slug string) (*model.Post, bool)
	SetPost(ctx context.Context, post *model.Post)
	InvalidatePost(ctx context.Context, slug string)

	GetCounts(ctx context.Context, postID string) (model.InteractionCounts, bool)
	SetCounts(ctx context.Context, postID string, counts model.InteractionCounts)
	// IncrCount 调整已缓存的计数；计数未缓存时什么都不做并返回 false
	IncrCount(ctx context.Context, postID string, typ model.InteractionType, delta int64) (bool, error)
	InvalidateCounts(ctx context.Context, postID string)
}

// incrIfCached 只修改由 SetCounts 完整写入的 hash
var incrIfCached = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  return redis.call("HINCRBY", KEYS[1], ARGV[1], ARGV[2])
end
return false
`)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func postKey(slug string) string { return fmt.Sprintf("post:slug:%s", slug) }

func countsKey(postID string) string { return fmt.Sprintf("interactions:%s", postID) }

func (s *redisStore) GetPost(ctx context.Context, slug string) (*model.Post, bool) {
	data, err := s.client.Get(ctx, postKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	var p model.Post
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (s *redisStore) SetPost(ctx context.Context, post *model.Post) {
	if payload, err := json.Marshal(post); err == nil {
		_ = s.client.Set(ctx, postKey(post.Slug), payload, s.ttl).Err()
	}
}

func (s *redisStore) InvalidatePost(ctx context.Context, slug string) {
	_ = s.client.Del(ctx, postKey(slug)).Err()
}

func (s *redisStore) GetCounts(ctx context.Context, postID string) (model.InteractionCounts, bool) {
	vals, err := s.client.HGetAll(ctx, countsKey(postID)).Result()
	if err != nil || len(vals) == 0 {
		return nil, false
	}
	counts := model.NewInteractionCounts()
	for k, v := range vals {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		if t := model.InteractionType(k); t.Valid() {
			counts[t] = n
		}
	}
	return counts, true
}

func (s *redisStore) SetCounts(ctx context.Context, postID string, counts model.InteractionCounts) {
	key := countsKey(postID)
	fields := make(map[string]any, len(model.InteractionTypes))
	for _, t := range model.InteractionTypes {
		fields[string(t)] = counts[t]
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	_, _ = pipe.Exec(ctx)
}

func (s *redisStore) IncrCount(ctx context.Context, postID string, typ model.InteractionType, delta int64) (bool, error) {
	err := incrIfCached.Run(ctx, s.client, []string{countsKey(postID)}, string(typ), delta).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) InvalidateCounts(ctx context.Context, postID string) {
	_ = s.client.Del(ctx, countsKey(postID)).Err()
}

// Noop 未启用 Redis 时使用，读取总是未命中
type Noop struct{}

func (Noop) GetPost(context.Context, string) (*model.Post, bool) { return nil, false }
func (Noop) SetPost(context.Context, *model.Post)                {}
func (Noop) InvalidatePost(context.Context, string)              {}
func (Noop) GetCounts(context.Context, string) (model.InteractionCounts, bool) {
	return nil, false
}
func (Noop) SetCounts(context.Context, string, model.InteractionCounts) {}
func (Noop) IncrCount(context.Context, string, model.InteractionType, int64) (bool, error) {
	return false, nil
}
func (Noop) InvalidateCounts(context.Context, string) {}
