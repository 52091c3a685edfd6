package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/auth"
)

type staticChecker struct {
	ok  bool
	err error
}

func (s staticChecker) IsBlogAdmin(context.Context, *auth.Session) (bool, error) {
	return s.ok, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newGatedRouter(checker auth.PrivilegeChecker, issuer *auth.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/admin/posts", AdminGate(issuer, checker, "/admin"), func(c *gin.Context) {
		c.String(http.StatusOK, AdminSession(c).Subject)
	})
	return r
}

func TestAdminGate(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "gin-blog", time.Hour)
	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	t.Run("bearer token for admin passes", func(t *testing.T) {
		r := newGatedRouter(staticChecker{ok: true}, issuer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("cookie is accepted", func(t *testing.T) {
		r := newGatedRouter(staticChecker{ok: true}, issuer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api call without session gets 401", func(t *testing.T) {
		r := newGatedRouter(staticChecker{ok: true}, issuer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/posts", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"login_path":"/admin"`)
	})

	t.Run("browser without privilege is redirected", func(t *testing.T) {
		r := newGatedRouter(staticChecker{ok: false}, issuer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
	})

	t.Run("privilege check error fails closed", func(t *testing.T) {
		r := newGatedRouter(staticChecker{ok: true, err: errors.New("db down")}, issuer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
