package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

type PostService interface {
	List(ctx context.Context, f service.PostFilter) []*model.Post
	Categories(ctx context.Context) []string
	Recent(ctx context.Context, count int, excludeSlug string) []*model.Post
	Home(ctx context.Context, recentCount int) service.HomePage
	GetByID(ctx context.Context, id string) *model.Post
	ViewBySlug(ctx context.Context, slug string) *model.Post
	Create(ctx context.Context, d model.PostDraft) (string, bool)
	Update(ctx context.Context, id string, patch model.PostPatch) bool
	DeleteCascade(ctx context.Context, id string) bool
	SyncCatalog(ctx context.Context) (synced, failed int)
}

type EngagementService interface {
	ListComments(ctx context.Context, postID string) []*model.Comment
	AddComment(ctx context.Context, postID, name, message string) *model.Comment
	CountInteractions(ctx context.Context, postID string) model.InteractionCounts
	React(ctx context.Context, postID string, typ model.InteractionType, visitor string) (model.InteractionCounts, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

type SiteService interface {
	SubmitContact(ctx context.Context, name, email, message string) bool
	Subscribe(ctx context.Context, email string) (created, ok bool)
}

type Handler struct {
	postService       PostService
	engagementService EngagementService
	adminService      AdminService
	siteService       SiteService
	recentCount       int
}

func NewHandler(posts PostService, engagement EngagementService, admin AdminService, site SiteService, recentCount int) *Handler {
	if recentCount <= 0 {
		recentCount = 3
	}
	return &Handler{
		postService:       posts,
		engagementService: engagement,
		adminService:      admin,
		siteService:       site,
		recentCount:       recentCount,
	}
}

// Health 存活检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
