package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// Tentative 是一次已经生效、尚待确认的计数变更。
// Commit 与 Revert 只有第一次调用生效。
type Tentative struct {
	once   sync.Once
	revert func()
}

// ApplyTentative 先把 typ 的计数加一（内存中的 counts 与缓存中的计数），
// 写库成功后 Commit，失败后 Revert 做反向操作。
func ApplyTentative(ctx context.Context, store cache.Store, postID string, counts model.InteractionCounts, typ model.InteractionType) *Tentative {
	undoLocal := counts.Apply(typ)

	// 只有加一真正落到缓存上时才需要反向；未命中时计数可能在撤销前被别人重建
	cached, err := store.IncrCount(ctx, postID, typ, 1)
	if err != nil {
		cached = false
	}
	return &Tentative{revert: func() {
		undoLocal()
		if !cached {
			return
		}
		if _, err := store.IncrCount(context.WithoutCancel(ctx), postID, typ, -1); err != nil {
			// 反向失败时直接丢弃缓存，下次读取重建
			logger.Warn("revert cached count failed", zap.String("post_id", postID), zap.Error(err))
			store.InvalidateCounts(context.WithoutCancel(ctx), postID)
		}
	}}
}

func (t *Tentative) Commit() {
	t.once.Do(func() {})
}

func (t *Tentative) Revert() {
	t.once.Do(t.revert)
}
