package auth

import (
	"context"
	"errors"

	"github.com/d60-Lab/gin-blog/internal/repository"
)

// AdminLookup 按会话主体查询 admin_users.is_admin
type AdminLookup struct {
	admins repository.AdminRepository
}

func NewAdminLookup(admins repository.AdminRepository) *AdminLookup {
	return &AdminLookup{admins: admins}
}

func (a *AdminLookup) IsBlogAdmin(ctx context.Context, s *Session) (bool, error) {
	u, err := a.admins.GetByID(ctx, s.Subject)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}
