package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type CommentRepository interface {
	// ListByPost 按创建时间倒序
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	// Create 写入评论并回填 id 与 created_at
	Create(ctx context.Context, postID, name, message string) (*model.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) Create(ctx context.Context, postID, name, message string) (*model.Comment, error) {
	c := &model.Comment{ID: uuid.New().String(), PostID: postID, Name: name, Message: message}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Comment{}).Error
}
