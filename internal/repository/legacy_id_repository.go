package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/model"
)

// LegacyIDVersion 当前映射规则版本
const LegacyIDVersion = 1

// LegacyIDRepository 旧 id 映射表，实现 identity.MappingStore
type LegacyIDRepository interface {
	identity.MappingStore
	// Save 首次写入生效，已存在的映射不会被覆盖
	Save(ctx context.Context, legacyID, postID string) error
	List(ctx context.Context) ([]*model.LegacyPostID, error)
}

type legacyIDRepository struct{ db *gorm.DB }

func NewLegacyIDRepository(db *gorm.DB) LegacyIDRepository { return &legacyIDRepository{db: db} }

func (r *legacyIDRepository) Lookup(ctx context.Context, legacyID string) (string, error) {
	var m model.LegacyPostID
	err := r.db.WithContext(ctx).Where("legacy_id = ?", legacyID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", identity.ErrNoMapping
	}
	if err != nil {
		return "", err
	}
	return m.PostID, nil
}

func (r *legacyIDRepository) Save(ctx context.Context, legacyID, postID string) error {
	m := &model.LegacyPostID{LegacyID: legacyID, PostID: postID, Version: LegacyIDVersion}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *legacyIDRepository) List(ctx context.Context) ([]*model.LegacyPostID, error) {
	var res []*model.LegacyPostID
	err := r.db.WithContext(ctx).Order("legacy_id").Find(&res).Error
	return res, err
}
