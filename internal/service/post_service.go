package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/catalog"
	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/pkg/logger"
	"github.com/d60-Lab/gin-blog/pkg/slug"
)

// PostFilter 列表筛选，空字段表示不过滤
type PostFilter struct {
	Category string
	Query    string
}

// PostService 文章读写。存储失败只记录日志并返回中性值（空列表、nil 或 false）
type PostService struct {
	posts    repository.PostRepository
	legacy   repository.LegacyIDRepository
	resolver *identity.Resolver
	cache    cache.Store
	catalog  *catalog.Catalog
	call     storeCall
	now      func() time.Time

	defaultAuthor, defaultAvatar string
}

func NewPostService(
	posts repository.PostRepository,
	legacy repository.LegacyIDRepository,
	resolver *identity.Resolver,
	store cache.Store,
	cat *catalog.Catalog,
	timeout time.Duration,
) *PostService {
	if store == nil {
		store = cache.Noop{}
	}
	return &PostService{
		posts:    posts,
		legacy:   legacy,
		resolver: resolver,
		cache:    store,
		catalog:  cat,
		call:     storeCall{timeout: timeout},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithAuthorDefaults 草稿未填写作者时使用的默认值
func (s *PostService) WithAuthorDefaults(name, avatar string) *PostService {
	s.defaultAuthor, s.defaultAvatar = name, avatar
	return s
}

// GetAll 按 date 倒序返回全部文章
func (s *PostService) GetAll(ctx context.Context) []*model.Post {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	list, err := s.posts.List(ctx)
	if err != nil {
		report("list posts", err)
		return []*model.Post{}
	}
	return list
}

// List 在 GetAll 的基础上按分类与关键词过滤
func (s *PostService) List(ctx context.Context, f PostFilter) []*model.Post {
	if f.Category == "" && f.Query == "" {
		return s.GetAll(ctx)
	}
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()

	var (
		list []*model.Post
		err  error
	)
	if f.Category != "" {
		list, err = s.posts.ListByCategory(ctx, f.Category)
	} else {
		list, err = s.posts.Search(ctx, f.Query)
	}
	if err != nil {
		report("filter posts", err, zap.String("category", f.Category), zap.String("q", f.Query))
		return []*model.Post{}
	}
	if f.Category != "" && f.Query != "" {
		list = matching(list, f.Query)
	}
	return list
}

func matching(list []*model.Post, q string) []*model.Post {
	q = strings.ToLower(q)
	out := list[:0]
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Excerpt), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *PostService) Categories(ctx context.Context) []string {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	cats, err := s.posts.Categories(ctx)
	if err != nil {
		report("list categories", err)
		return []string{}
	}
	return cats
}

// Recent 最新的 count 篇，跳过 excludeSlug
func (s *PostService) Recent(ctx context.Context, count int, excludeSlug string) []*model.Post {
	out := []*model.Post{}
	if count <= 0 {
		return out
	}
	for _, p := range s.GetAll(ctx) {
		if len(out) == count {
			break
		}
		if excludeSlug != "" && p.Slug == excludeSlug {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetByID 未找到或存储失败时返回 nil
func (s *PostService) GetByID(ctx context.Context, id string) *model.Post {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, id)
	p, err := s.posts.GetByID(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrPostNotFound) {
			report("get post", err, zap.String("id", key))
		}
		return nil
	}
	return p
}

// GetBySlug 先查缓存
func (s *PostService) GetBySlug(ctx context.Context, slugStr string) *model.Post {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	if p, ok := s.cache.GetPost(ctx, slugStr); ok {
		return p
	}
	p, err := s.posts.GetBySlug(ctx, slugStr)
	if err != nil {
		if !errors.Is(err, repository.ErrPostNotFound) {
			report("get post by slug", err, zap.String("slug", slugStr))
		}
		return nil
	}
	s.cache.SetPost(ctx, p)
	return p
}

// ViewBySlug 详情页读取：目录中有该 slug 时先同步，再从库中读取
func (s *PostService) ViewBySlug(ctx context.Context, slugStr string) *model.Post {
	if s.catalog != nil {
		if src, ok := s.catalog.BySlug(slugStr); ok {
			if !s.SyncFromSource(ctx, src) {
				logger.Warn("catalog sync on view failed", zap.String("slug", slugStr))
			}
		}
	}
	return s.GetBySlug(ctx, slugStr)
}

// Create 生成新的随机 UUID 并以当前时间作为 date；失败返回 ("", false)
func (s *PostService) Create(ctx context.Context, d model.PostDraft) (string, bool) {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()

	postSlug := d.Slug
	if postSlug == "" {
		postSlug = slug.Make(d.Title)
	}
	p := &model.Post{
		ID:           uuid.New().String(),
		Title:        d.Title,
		Slug:         postSlug,
		Excerpt:      d.Excerpt,
		Content:      d.Content,
		CoverImage:   d.CoverImage,
		Category:     d.Category,
		AuthorName:   d.AuthorName,
		AuthorAvatar: d.AuthorAvatar,
		Date:         s.now(),
	}
	if p.AuthorName == "" {
		p.AuthorName = s.defaultAuthor
	}
	if p.AuthorAvatar == "" {
		p.AuthorAvatar = s.defaultAvatar
	}
	if err := s.posts.Create(ctx, p); err != nil {
		report("create post", err, zap.String("slug", p.Slug))
		return "", false
	}
	return p.ID, true
}

// Update 稀疏更新；文章不存在或写入失败返回 false
func (s *PostService) Update(ctx context.Context, id string, patch model.PostPatch) bool {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, id)

	before, err := s.posts.GetByID(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrPostNotFound) {
			report("load post for update", err, zap.String("id", key))
		}
		return false
	}
	if patch.IsEmpty() {
		return true
	}
	if err := s.posts.Update(ctx, key, patch); err != nil {
		report("update post", err, zap.String("id", key))
		return false
	}
	s.cache.InvalidatePost(ctx, before.Slug)
	if patch.Slug != nil {
		s.cache.InvalidatePost(ctx, *patch.Slug)
	}
	return true
}

// Delete 只删除文章，评论与反应需由调用方先删除
func (s *PostService) Delete(ctx context.Context, id string) bool {
	return s.remove(ctx, id, false)
}

// DeleteCascade 在同一事务内删除评论、反应与文章
func (s *PostService) DeleteCascade(ctx context.Context, id string) bool {
	return s.remove(ctx, id, true)
}

func (s *PostService) remove(ctx context.Context, id string, cascade bool) bool {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	key := s.resolver.Resolve(ctx, id)

	existing, err := s.posts.GetByID(ctx, key)
	if err != nil && !errors.Is(err, repository.ErrPostNotFound) {
		report("load post for delete", err, zap.String("id", key))
		return false
	}

	if cascade {
		err = s.posts.DeleteCascade(ctx, key)
	} else {
		err = s.posts.Delete(ctx, key)
	}
	if err != nil {
		report("delete post", err, zap.String("id", key), zap.Bool("cascade", cascade))
		return false
	}
	if existing != nil {
		s.cache.InvalidatePost(ctx, existing.Slug)
	}
	s.cache.InvalidateCounts(ctx, key)
	return true
}

// SyncFromSource 以 slug 为键 upsert 目录文章。已有行的内容被覆盖、id 保持不变；
// 新行的 id 依次取：源 id（若为 UUID）、已记录的旧 id 映射、新随机 UUID。
func (s *PostService) SyncFromSource(ctx context.Context, src catalog.SourcePost) bool {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()

	p := &model.Post{
		ID:           s.sourceID(ctx, src.ID),
		Title:        src.Title,
		Slug:         src.Slug,
		Excerpt:      src.Excerpt,
		Content:      src.Content,
		CoverImage:   src.CoverImage,
		Category:     src.Category,
		AuthorName:   src.Author.Name,
		AuthorAvatar: src.Author.Avatar,
		Date:         src.PublishedAt(),
	}
	if p.Date.IsZero() {
		p.Date = s.now()
	}

	stored, err := s.posts.UpsertBySlug(ctx, p)
	if err != nil {
		report("sync post", err, zap.String("slug", src.Slug))
		return false
	}
	s.cache.SetPost(ctx, stored)

	if src.ID != "" && !identity.IsUUID(src.ID) && s.legacy != nil {
		if err := s.legacy.Save(ctx, src.ID, stored.ID); err != nil {
			logger.Warn("record legacy id failed", zap.String("legacy_id", src.ID), zap.Error(err))
		}
	}
	return true
}

func (s *PostService) sourceID(ctx context.Context, id string) string {
	if identity.IsUUID(id) {
		return id
	}
	if id != "" && s.legacy != nil {
		if mapped, err := s.legacy.Lookup(ctx, id); err == nil {
			return mapped
		}
	}
	return uuid.New().String()
}

// SyncCatalog 同步目录中的全部文章
func (s *PostService) SyncCatalog(ctx context.Context) (synced, failed int) {
	if s.catalog == nil {
		return 0, 0
	}
	ctx, span := tracer.Start(ctx, "PostService.SyncCatalog")
	defer span.End()

	for _, src := range s.catalog.All() {
		if s.SyncFromSource(ctx, src) {
			synced++
		} else {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("catalog.synced", synced), attribute.Int("catalog.failed", failed))
	logger.Info("catalog synced", zap.Int("synced", synced), zap.Int("failed", failed))
	return synced, failed
}

// HomePage 首页数据：最新一篇作为精选，其余为最近文章
type HomePage struct {
	Featured   *model.Post   `json:"featured"`
	Recent     []*model.Post `json:"recent"`
	Categories []string      `json:"categories"`
}

func (s *PostService) Home(ctx context.Context, recentCount int) HomePage {
	all := s.GetAll(ctx)
	page := HomePage{Recent: []*model.Post{}, Categories: s.Categories(ctx)}
	if len(all) == 0 {
		return page
	}
	page.Featured = all[0]
	rest := all[1:]
	if recentCount < 0 {
		recentCount = 0
	}
	if len(rest) > recentCount {
		rest = rest[:recentCount]
	}
	page.Recent = rest
	return page
}
