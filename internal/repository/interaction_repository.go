package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type InteractionRepository interface {
	// ListTypesByPost 返回该文章每条反应的类型（未聚合）
	ListTypesByPost(ctx context.Context, postID string) ([]model.InteractionType, error)
	// Create 写入一条反应；同一访客重复反应返回 ErrDuplicate
	Create(ctx context.Context, postID string, typ model.InteractionType, visitor *string) error
	ExistsForVisitor(ctx context.Context, postID, visitor string) (bool, error)
	DeleteByPost(ctx context.Context, postID string) error
}

type interactionRepository struct{ db *gorm.DB }

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) ListTypesByPost(ctx context.Context, postID string) ([]model.InteractionType, error) {
	var types []model.InteractionType
	err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Where("post_id = ?", postID).
		Pluck("type", &types).Error
	return types, err
}

func (r *interactionRepository) Create(ctx context.Context, postID string, typ model.InteractionType, visitor *string) error {
	it := &model.Interaction{ID: uuid.New().String(), PostID: postID, Type: typ, Name: visitor}
	err := r.db.WithContext(ctx).Create(it).Error
	if err == nil {
		return nil
	}
	if isDuplicate(err) {
		return ErrDuplicate
	}
	// 部分驱动不翻译唯一键错误，按访客再查一次
	if visitor != nil {
		if exists, qErr := r.ExistsForVisitor(ctx, postID, *visitor); qErr == nil && exists {
			return ErrDuplicate
		}
	}
	return err
}

func (r *interactionRepository) ExistsForVisitor(ctx context.Context, postID, visitor string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Where("post_id = ? AND name = ?", postID, visitor).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *interactionRepository) DeleteByPost(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Interaction{}).Error
}
