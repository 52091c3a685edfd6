package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/gin-blog/docs"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/middleware"
)

type Options struct {
	Mode        string
	Sentry      bool
	Tracing     bool
	ServiceName string
	Swagger     bool
}

// NewRouter 注册全部路由。adminGate 放在 /api/v1/admin 下除登录外的所有路由前
func NewRouter(h *handler.Handler, adminGate gin.HandlerFunc, opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if err := handler.RegisterValidators(); err != nil {
		panic(err)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	if opts.Tracing {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	if opts.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", h.Health)
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/home", h.Home)

		posts := v1.Group("/posts")
		posts.GET("", h.ListPosts)
		posts.GET("/categories", h.ListCategories)
		posts.GET("/recent", h.RecentPosts)
		posts.GET("/slug/:slug", h.GetPostBySlug)
		posts.GET("/:id", h.GetPost)
		posts.GET("/:id/comments", h.ListComments)
		posts.POST("/:id/comments", h.AddComment)
		posts.GET("/:id/interactions", h.CountInteractions)
		posts.POST("/:id/interactions", h.React)

		v1.POST("/contact", h.Contact)
		v1.POST("/newsletter", h.Subscribe)

		v1.POST("/admin/login", h.Login)
		admin := v1.Group("/admin", adminGate)
		admin.GET("/session", h.Session)
		admin.GET("/posts", h.AdminListPosts)
		admin.POST("/posts", h.CreatePost)
		admin.POST("/posts/sync", h.SyncPosts)
		admin.PATCH("/posts/:id", h.UpdatePost)
		admin.DELETE("/posts/:id", h.DeletePost)
	}
	return r
}
