package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

var (
	// ErrPostNotFound 评论或反应指向不存在的文章
	ErrPostNotFound = errors.New("post not found")
	// ErrAlreadyReacted 该访客已对这篇文章做过反应
	ErrAlreadyReacted = errors.New("visitor already reacted to this post")
	// ErrReactionFailed 反应写入失败，暂定的计数已撤销
	ErrReactionFailed = errors.New("reaction could not be saved")
)

// EngagementService 评论与反应
type EngagementService struct {
	posts        repository.PostRepository
	comments     repository.CommentRepository
	interactions repository.InteractionRepository
	resolver     *identity.Resolver
	cache        cache.Store
	call         storeCall
}

func NewEngagementService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	interactions repository.InteractionRepository,
	resolver *identity.Resolver,
	store cache.Store,
	timeout time.Duration,
) *EngagementService {
	if store == nil {
		store = cache.Noop{}
	}
	return &EngagementService{
		posts:        posts,
		comments:     comments,
		interactions: interactions,
		resolver:     resolver,
		cache:        store,
		call:         storeCall{timeout: timeout},
	}
}

// ListComments 按创建时间倒序，失败返回空列表
func (s *EngagementService) ListComments(ctx context.Context, postID string) []*model.Comment {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, postID)
	list, err := s.comments.ListByPost(ctx, key)
	if err != nil {
		report("list comments", err, zap.String("post_id", key))
		return []*model.Comment{}
	}
	return list
}

// requirePost 文章不存在时返回 ErrPostNotFound
func (s *EngagementService) requirePost(ctx context.Context, key string) error {
	ok, err := s.posts.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

// AddComment 返回存储后的评论（含服务端生成的 id 与时间）。
// 文章不存在或存储失败返回 nil
func (s *EngagementService) AddComment(ctx context.Context, postID, name, message string) *model.Comment {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, postID)
	if err := s.requirePost(ctx, key); err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			report("add comment", err, zap.String("post_id", key))
		}
		return nil
	}
	c, err := s.comments.Create(ctx, key, name, message)
	if err != nil {
		report("add comment", err, zap.String("post_id", key))
		return nil
	}
	return c
}

// CountInteractions 总是包含全部四种类型，失败时全部为 0
func (s *EngagementService) CountInteractions(ctx context.Context, postID string) model.InteractionCounts {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, postID)
	return s.countResolved(ctx, key)
}

func (s *EngagementService) countResolved(ctx context.Context, key string) model.InteractionCounts {
	if counts, ok := s.cache.GetCounts(ctx, key); ok {
		return counts
	}

	types, err := s.interactions.ListTypesByPost(ctx, key)
	if err != nil {
		report("count interactions", err, zap.String("post_id", key))
		return model.NewInteractionCounts()
	}
	counts := model.NewInteractionCounts()
	for _, t := range types {
		if _, ok := counts[t]; ok {
			counts[t]++
		}
	}
	s.cache.SetCounts(ctx, key, counts)
	return counts
}

// AddInteraction 失败（包括文章不存在、同一访客重复反应）返回 false。visitor 为空表示不追踪访客
func (s *EngagementService) AddInteraction(ctx context.Context, postID string, typ model.InteractionType, visitor string) bool {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, postID)
	err := s.requirePost(ctx, key)
	if err == nil {
		err = s.addResolved(ctx, key, typ, visitor)
	}
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicate) && !errors.Is(err, ErrPostNotFound) {
			report("add interaction", err, zap.String("post_id", key))
		}
		return false
	}
	s.cache.InvalidateCounts(ctx, key)
	return true
}

func (s *EngagementService) addResolved(ctx context.Context, key string, typ model.InteractionType, visitor string) error {
	var tag *string
	if visitor != "" {
		tag = &visitor
	}
	return s.interactions.Create(ctx, key, typ, tag)
}

// React 乐观地更新计数：先暂定加一，写库成功则确认，否则撤销。
// 返回值为操作结束后的计数。
func (s *EngagementService) React(ctx context.Context, postID string, typ model.InteractionType, visitor string) (model.InteractionCounts, error) {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, postID)
	if err := s.requirePost(ctx, key); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return model.NewInteractionCounts(), ErrPostNotFound
		}
		report("react", err, zap.String("post_id", key))
		return model.NewInteractionCounts(), ErrReactionFailed
	}

	counts := s.countResolved(ctx, key).Clone()
	t := ApplyTentative(ctx, s.cache, key, counts, typ)

	err := s.addResolved(ctx, key, typ, visitor)
	if err == nil {
		t.Commit()
		return counts, nil
	}

	t.Revert()
	if errors.Is(err, repository.ErrDuplicate) {
		logger.Debug("duplicate reaction", zap.String("post_id", key), zap.String("visitor", visitor))
		return counts, ErrAlreadyReacted
	}
	report("react", err, zap.String("post_id", key), zap.String("type", string(typ)))
	return counts, ErrReactionFailed
}
