package identity

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// ErrNoMapping 旧 id 从未迁移过
var ErrNoMapping = errors.New("identity: no mapping")

// MappingStore 查询已持久化的旧 id 映射
type MappingStore interface {
	Lookup(ctx context.Context, legacyID string) (string, error)
}

// Resolver 把调用方传入的 id 转为 posts.id 中的值，已持久化的映射优先于 Normalize
type Resolver struct {
	store MappingStore

	mu   sync.RWMutex
	memo map[string]string
}

// NewResolver store 可以为 nil，此时只做 Normalize
func NewResolver(store MappingStore) *Resolver {
	return &Resolver{store: store, memo: make(map[string]string)}
}

// Resolve 不会失败：查询出错只记录日志，退回 Normalize
func (r *Resolver) Resolve(ctx context.Context, id string) string {
	if IsUUID(id) {
		return id
	}

	r.mu.RLock()
	mapped, ok := r.memo[id]
	r.mu.RUnlock()
	if ok {
		return mapped
	}

	if r.store != nil {
		mapped, err := r.store.Lookup(ctx, id)
		switch {
		case err == nil:
			r.remember(id, mapped)
			return mapped
		case errors.Is(err, ErrNoMapping):
		default:
			logger.Warn("legacy id lookup failed", zap.String("legacy_id", id), zap.Error(err))
		}
	}
	return Normalize(id)
}

func (r *Resolver) remember(legacyID, postID string) {
	r.mu.Lock()
	r.memo[legacyID] = postID
	r.mu.Unlock()
}
