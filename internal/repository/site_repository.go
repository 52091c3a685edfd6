package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/gin-blog/internal/model"
)

// SiteRepository 联系表单与订阅
type SiteRepository interface {
	CreateContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error)
	// Subscribe 幂等；created 表示是否为新订阅
	Subscribe(ctx context.Context, email string) (created bool, err error)
}

type siteRepository struct{ db *gorm.DB }

func NewSiteRepository(db *gorm.DB) SiteRepository { return &siteRepository{db: db} }

func (r *siteRepository) CreateContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	m := &model.ContactMessage{ID: uuid.New().String(), Name: name, Email: email, Message: message}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *siteRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	s := &model.Subscriber{ID: uuid.New().String(), Email: email}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
