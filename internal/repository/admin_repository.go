package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	// Upsert 按用户名创建或更新密码哈希与权限
	Upsert(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.AdminUser, error)
}

type adminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepository{db: db} }

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *adminRepository) first(ctx context.Context, query, arg string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *adminRepository) Upsert(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.AdminUser, error) {
	u, err := r.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, ErrAdminNotFound):
		u = &model.AdminUser{ID: uuid.New().String(), Username: username, PasswordHash: passwordHash, IsAdmin: isAdmin}
		if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
			return nil, err
		}
		return u, nil
	case err != nil:
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(u).Updates(map[string]any{
		"password_hash": passwordHash,
		"is_admin":      isAdmin,
		"updated_at":    time.Now().UTC(),
	}).Error
	if err != nil {
		return nil, err
	}
	u.PasswordHash, u.IsAdmin = passwordHash, isAdmin
	return u, nil
}
