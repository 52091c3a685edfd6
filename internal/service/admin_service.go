package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/auth"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginResult 登录成功后返回给前端的会话
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	IsAdmin   bool      `json:"is_admin"`
}

type AdminService struct {
	admins repository.AdminRepository
	tokens *auth.TokenIssuer
	call   storeCall
}

func NewAdminService(admins repository.AdminRepository, tokens *auth.TokenIssuer, timeout time.Duration) *AdminService {
	return &AdminService{admins: admins, tokens: tokens, call: storeCall{timeout: timeout}}
}

// Login 校验密码并签发会话。是否有管理权限在每次请求时由 Gate 重新确认
func (s *AdminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()

	u, err := s.admins.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		logger.Info("admin login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, IsAdmin: u.IsAdmin}, nil
}

// EnsureAdmin 创建或更新账号
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string, isAdmin bool) (*model.AdminUser, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	return s.admins.Upsert(ctx, username, hash, isAdmin)
}
