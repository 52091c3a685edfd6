package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 管理员登录
// @Summary 管理员登录，返回会话令牌并写入 cookie
// @Tags 管理
// @Accept json
// @Produce json
// @Param request body loginRequest true "账号密码"
// @Success 200 {object} response.Response{data=service.LoginResult}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Unauthorized(c, err.Error(), nil)
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, res.Token, int(time.Until(res.ExpiresAt).Seconds()),
		"/", "", c.Request.TLS != nil, true)
	response.Success(c, res)
}

// Session 当前管理会话状态
// @Summary 管理会话状态
// @Tags 管理
// @Produce json
// @Security AdminSession
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/session [get]
func (h *Handler) Session(c *gin.Context) {
	s := middleware.AdminSession(c)
	response.Success(c, gin.H{
		"state":      middleware.GateState(c).String(),
		"subject":    s.Subject,
		"expires_at": s.ExpiresAt,
	})
}
