package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// SiteService 联系表单与邮件订阅
type SiteService struct {
	site repository.SiteRepository
	call storeCall
}

func NewSiteService(site repository.SiteRepository, timeout time.Duration) *SiteService {
	return &SiteService{site: site, call: storeCall{timeout: timeout}}
}

func (s *SiteService) SubmitContact(ctx context.Context, name, email, message string) bool {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	if _, err := s.site.CreateContact(ctx, name, strings.ToLower(strings.TrimSpace(email)), message); err != nil {
		report("submit contact", err)
		return false
	}
	return true
}

// Subscribe 重复订阅视为成功，created 为 false
func (s *SiteService) Subscribe(ctx context.Context, email string) (created, ok bool) {
	ctx, cancel := s.call.ctx(ctx)
	defer cancel()
	email = strings.ToLower(strings.TrimSpace(email))
	created, err := s.site.Subscribe(ctx, email)
	if err != nil {
		report("subscribe", err)
		return false, false
	}
	if created {
		logger.Info("newsletter subscription", zap.String("email", email))
	}
	return created, true
}
