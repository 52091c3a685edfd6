package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

// Home 首页数据
// @Summary 首页：精选文章、最近文章与分类
// @Tags 文章
// @Produce json
// @Success 200 {object} response.Response{data=service.HomePage}
// @Router /api/v1/home [get]
func (h *Handler) Home(c *gin.Context) {
	response.Success(c, h.postService.Home(c.Request.Context(), h.recentCount))
}

// ListPosts 文章列表
// @Summary 文章列表（按日期倒序）
// @Tags 文章
// @Produce json
// @Param category query string false "分类（不区分大小写）"
// @Param q query string false "标题、摘要、分类关键词"
// @Success 200 {object} response.Response{data=[]model.Post}
// @Router /api/v1/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	list := h.postService.List(c.Request.Context(), service.PostFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	})
	response.Success(c, list)
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags 文章
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/posts/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, h.postService.Categories(c.Request.Context()))
}

// maxRecentCount 最近文章接口单次最多返回的数量
const maxRecentCount = 50

// RecentPosts 最近文章
// @Summary 最近文章
// @Tags 文章
// @Produce json
// @Param count query int false "数量（0-50）" default(3)
// @Param exclude query string false "排除的 slug"
// @Success 200 {object} response.Response{data=[]model.Post}
// @Failure 400 {object} response.Response
// @Router /api/v1/posts/recent [get]
func (h *Handler) RecentPosts(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(h.recentCount)))
	if err != nil || count < 0 || count > maxRecentCount {
		response.BadRequest(c, fmt.Sprintf("count must be an integer between 0 and %d", maxRecentCount))
		return
	}
	response.Success(c, h.postService.Recent(c.Request.Context(), count, c.Query("exclude")))
}

// GetPostBySlug 文章详情（按 slug）
// @Summary 文章详情（先同步目录中的同名文章）
// @Tags 文章
// @Produce json
// @Param slug path string true "slug"
// @Success 200 {object} response.Response{data=model.Post}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/slug/{slug} [get]
func (h *Handler) GetPostBySlug(c *gin.Context) {
	p := h.postService.ViewBySlug(c.Request.Context(), c.Param("slug"))
	if p == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.Success(c, p)
}

// GetPost 文章详情（按 id，兼容旧的数字 id）
// @Summary 文章详情
// @Tags 文章
// @Produce json
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response{data=model.Post}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	p := h.postService.GetByID(c.Request.Context(), c.Param("id"))
	if p == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.Success(c, p)
}

type createPostRequest struct {
	Title        string `json:"title" binding:"required,nonblank,max=200"`
	Slug         string `json:"slug" binding:"omitempty,slug,max=200"`
	Excerpt      string `json:"excerpt" binding:"max=500"`
	Content      string `json:"content" binding:"required,nonblank"`
	CoverImage   string `json:"cover_image" binding:"required,nonblank"`
	Category     string `json:"category" binding:"max=100"`
	AuthorName   string `json:"author_name" binding:"max=100"`
	AuthorAvatar string `json:"author_avatar"`
}

type updatePostRequest struct {
	Title        *string `json:"title" binding:"omitempty,nonblank,max=200"`
	Slug         *string `json:"slug" binding:"omitempty,slug,max=200"`
	Excerpt      *string `json:"excerpt" binding:"omitempty,max=500"`
	Content      *string `json:"content" binding:"omitempty,nonblank"`
	CoverImage   *string `json:"cover_image" binding:"omitempty,nonblank"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	AuthorName   *string `json:"author_name" binding:"omitempty,max=100"`
	AuthorAvatar *string `json:"author_avatar"`
}

// AdminListPosts 管理端文章列表
// @Summary 管理端文章列表
// @Tags 管理
// @Produce json
// @Security AdminSession
// @Success 200 {object} response.Response{data=[]model.Post}
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/posts [get]
func (h *Handler) AdminListPosts(c *gin.Context) {
	response.Success(c, h.postService.List(c.Request.Context(), service.PostFilter{}))
}

// CreatePost 新建文章
// @Summary 新建文章
// @Tags 管理
// @Accept json
// @Produce json
// @Security AdminSession
// @Param request body createPostRequest true "文章"
// @Success 201 {object} response.Response{data=map[string]string}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/admin/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, ok := h.postService.Create(c.Request.Context(), model.PostDraft{
		Title:        req.Title,
		Slug:         req.Slug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		CoverImage:   req.CoverImage,
		Category:     req.Category,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
	})
	if !ok {
		response.Fail(c, "failed to create post")
		return
	}
	response.Created(c, gin.H{"id": id})
}

// UpdatePost 部分更新文章
// @Summary 部分更新文章（只写入请求中出现的字段）
// @Tags 管理
// @Accept json
// @Produce json
// @Security AdminSession
// @Param id path string true "文章ID"
// @Param request body updatePostRequest true "要修改的字段"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/posts/{id} [patch]
func (h *Handler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	patch := model.PostPatch{
		Title:        req.Title,
		Slug:         req.Slug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		CoverImage:   req.CoverImage,
		Category:     req.Category,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
	}
	if !h.postService.Update(c.Request.Context(), c.Param("id"), patch) {
		response.NotFound(c, "post not found or not updated")
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除文章及其评论与反应
// @Summary 删除文章（级联删除评论与反应）
// @Tags 管理
// @Produce json
// @Security AdminSession
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/admin/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	if !h.postService.DeleteCascade(c.Request.Context(), c.Param("id")) {
		response.Fail(c, "failed to delete post")
		return
	}
	response.Success(c, nil)
}

// SyncPosts 把内置目录同步到数据库
// @Summary 同步内置文章目录
// @Tags 管理
// @Produce json
// @Security AdminSession
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/admin/posts/sync [post]
func (h *Handler) SyncPosts(c *gin.Context) {
	synced, failed := h.postService.SyncCatalog(c.Request.Context())
	response.Success(c, gin.H{"synced": synced, "failed": failed})
}
