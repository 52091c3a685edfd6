package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/pkg/response"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required,nonblank,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,nonblank,max=5000"`
}

type newsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Contact 联系表单
// @Summary 提交联系表单
// @Tags 站点
// @Accept json
// @Produce json
// @Param request body contactRequest true "联系信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/contact [post]
func (h *Handler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.siteService.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Message) {
		response.Fail(c, "failed to send message")
		return
	}
	response.Created(c, nil)
}

// Subscribe 订阅邮件
// @Summary 订阅邮件（重复订阅不报错）
// @Tags 站点
// @Accept json
// @Produce json
// @Param request body newsletterRequest true "邮箱"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Failure 400 {object} response.Response
// @Router /api/v1/newsletter [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	created, ok := h.siteService.Subscribe(c.Request.Context(), req.Email)
	if !ok {
		response.Fail(c, "failed to subscribe")
		return
	}
	response.Success(c, gin.H{"created": created})
}
