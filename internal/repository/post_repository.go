package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/gin-blog/internal/model"
)

// syncColumns 按 slug upsert 时覆盖的列（id 不变）
var syncColumns = []string{
	"title", "excerpt", "content", "cover_image", "category", "author_name", "author_avatar", "date",
}

// PostRepository 文章仓储
type PostRepository interface {
	// List 按 date 倒序返回全部文章
	List(ctx context.Context) ([]*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, post *model.Post) error
	// Update 只写 patch 中出现的字段；没有匹配行时返回 ErrPostNotFound
	Update(ctx context.Context, id string, patch model.PostPatch) error
	// Delete 只删除文章本身，评论与反应不会级联删除
	Delete(ctx context.Context, id string) error
	// DeleteCascade 在一个事务内删除评论、反应与文章
	DeleteCascade(ctx context.Context, id string) error
	// UpsertBySlug 以 slug 为冲突键插入或覆盖，返回库中实际的行
	UpsertBySlug(ctx context.Context, post *model.Post) (*model.Post, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Post, error)
	Search(ctx context.Context, term string) ([]*model.Post, error)
	Categories(ctx context.Context) ([]string, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) List(ctx context.Context) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).Order("date DESC").Find(&res).Error
	return res, err
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *postRepository) first(ctx context.Context, query string, arg string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Where(query, arg).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *postRepository) Update(ctx context.Context, id string, patch model.PostPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(cols)
	if isDuplicate(res.Error) {
		return ErrDuplicate
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewCommentRepository(tx).DeleteByPost(ctx, id); err != nil {
			return err
		}
		if err := NewInteractionRepository(tx).DeleteByPost(ctx, id); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

func (r *postRepository) UpsertBySlug(ctx context.Context, post *model.Post) (*model.Post, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns(syncColumns),
		}).
		Create(post).Error
	if err != nil {
		return nil, err
	}
	return r.GetBySlug(ctx, post.Slug)
}

func (r *postRepository) ListByCategory(ctx context.Context, category string) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Where("LOWER(category) = ?", strings.ToLower(category)).
		Order("date DESC").
		Find(&res).Error
	return res, err
}

func (r *postRepository) Search(ctx context.Context, term string) ([]*model.Post, error) {
	like := "%" + strings.ToLower(term) + "%"
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(category) LIKE ?", like, like, like).
		Order("date DESC").
		Find(&res).Error
	return res, err
}

func (r *postRepository) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("category <> ''").
		Distinct("category").
		Order("category").
		Pluck("category", &cats).Error
	return cats, err
}
