package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/auth"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

// SessionCookie 登录接口写入的会话 cookie
const SessionCookie = "blog_session"

const (
	gateKey    = "admin_gate"
	sessionKey = "admin_session"
)

// AdminGate 每个请求新建一个 Gate 并校验。未通过时：
// 浏览器页面请求重定向到登录页，其余请求返回 401。
func AdminGate(parser auth.SessionParser, checker auth.PrivilegeChecker, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		g := auth.NewGate(parser, checker)
		state := g.Verify(c.Request.Context(), credential(c))
		c.Set(gateKey, state)

		if state != auth.Verified {
			if wantsHTML(c.Request) {
				c.Redirect(http.StatusFound, loginPath)
				c.Abort()
				return
			}
			response.Unauthorized(c, "admin session required", gin.H{"login_path": loginPath, "state": state.String()})
			return
		}
		c.Set(sessionKey, g.Session())
		c.Next()
	}
}

// AdminSession 只在 AdminGate 放行后非 nil
func AdminSession(c *gin.Context) *auth.Session {
	s, _ := c.Get(sessionKey)
	session, _ := s.(*auth.Session)
	return session
}

func GateState(c *gin.Context) auth.State {
	v, ok := c.Get(gateKey)
	if !ok {
		return auth.Unverified
	}
	state, _ := v.(auth.State)
	return state
}

func credential(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
