package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

type commentRequest struct {
	Name    string `json:"name" binding:"required,nonblank,max=100"`
	Message string `json:"message" binding:"required,nonblank,max=5000"`
}

type reactionRequest struct {
	Type      string `json:"type" binding:"required,oneof=like love insightful celebrate"`
	VisitorID string `json:"visitor_id" binding:"omitempty,max=64"`
}

// ListComments 文章评论
// @Summary 评论列表（最新在前）
// @Tags 互动
// @Produce json
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response{data=[]model.Comment}
// @Router /api/v1/posts/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	response.Success(c, h.engagementService.ListComments(c.Request.Context(), c.Param("id")))
}

// AddComment 发表评论
// @Summary 发表评论
// @Tags 互动
// @Accept json
// @Produce json
// @Param id path string true "文章ID"
// @Param request body commentRequest true "评论"
// @Success 201 {object} response.Response{data=model.Comment}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	comment := h.engagementService.AddComment(ctx, c.Param("id"),
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Message))
	if comment == nil {
		// 区分文章不存在与存储失败
		if h.postService.GetByID(ctx, c.Param("id")) == nil {
			response.NotFound(c, "post not found")
			return
		}
		response.Fail(c, "failed to add comment")
		return
	}
	response.Created(c, comment)
}

// CountInteractions 反应计数
// @Summary 反应计数（总是包含四种类型）
// @Tags 互动
// @Produce json
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/posts/{id}/interactions [get]
func (h *Handler) CountInteractions(c *gin.Context) {
	response.Success(c, h.engagementService.CountInteractions(c.Request.Context(), c.Param("id")))
}

// React 对文章做出反应
// @Summary 对文章做出反应（每个访客每篇文章一次）
// @Tags 互动
// @Accept json
// @Produce json
// @Param id path string true "文章ID"
// @Param request body reactionRequest true "反应"
// @Success 200 {object} response.Response{data=map[string]int}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/posts/{id}/interactions [post]
func (h *Handler) React(c *gin.Context) {
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	counts, err := h.engagementService.React(c.Request.Context(), c.Param("id"),
		model.InteractionType(req.Type), strings.TrimSpace(req.VisitorID))
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyReacted):
		response.Conflict(c, err.Error())
	case err != nil:
		response.Fail(c, err.Error())
	default:
		response.Success(c, counts)
	}
}
