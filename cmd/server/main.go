package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/api"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/auth"
	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/catalog"
	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/middleware"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/database"
	"github.com/d60-Lab/gin-blog/pkg/logger"
	"github.com/d60-Lab/gin-blog/pkg/monitor"
	"github.com/d60-Lab/gin-blog/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// @title gin-blog API
// @version 1.0
// @description 博客内容服务：文章、评论、反应与管理端编辑
// @BasePath /
// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sentryOn, err := monitor.InitSentry(cfg.Sentry)
	if err != nil {
		logger.Warn("sentry disabled", zap.Error(err))
	}
	defer monitor.Flush()

	shutdownTracing := must(tracing.Init(ctx, cfg.Tracing))
	defer func() { _ = shutdownTracing(context.Background()) }()

	db := must(database.InitDB(cfg))
	defer database.Close(db)

	store, closeCache, err := cache.Open(ctx, cfg.Redis, cfg.Cache.TTL)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		store, closeCache = cache.Noop{}, func() error { return nil }
	}
	defer closeCache()

	cat := must(catalog.Default())

	// repositories & services
	postRepo := repository.NewPostRepository(db)
	legacyRepo := repository.NewLegacyIDRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	resolver := identity.NewResolver(legacyRepo)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	postSvc := service.NewPostService(postRepo, legacyRepo, resolver, store, cat, cfg.Store.Timeout).
		WithAuthorDefaults(cfg.Blog.DefaultAuthorName, cfg.Blog.DefaultAuthorAvatar)
	engagementSvc := service.NewEngagementService(
		postRepo,
		repository.NewCommentRepository(db),
		repository.NewInteractionRepository(db),
		resolver, store, cfg.Store.Timeout,
	)
	adminSvc := service.NewAdminService(adminRepo, tokens, cfg.Store.Timeout)
	siteSvc := service.NewSiteService(repository.NewSiteRepository(db), cfg.Store.Timeout)

	stopSync := func(context.Context) error { return nil }
	if cfg.Blog.SyncOnStart {
		syncer := service.NewCatalogSyncer(postSvc, 0)
		stopSync = syncer.Start(2)
		queued := syncer.EnqueueCatalog(cat)
		logger.Info("catalog sync queued", zap.Int("posts", queued), zap.Int("backlog", syncer.QueueLen()))
		go logSyncResults(ctx, syncer.Results(), queued)
	}

	h := handler.NewHandler(postSvc, engagementSvc, adminSvc, siteSvc, cfg.Blog.RecentCount)
	gate := middleware.AdminGate(tokens, auth.NewAdminLookup(adminRepo), cfg.Admin.LoginPath)
	router := api.NewRouter(h, gate, api.Options{
		Mode:        cfg.Server.Mode,
		Sentry:      sentryOn,
		Tracing:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Swagger:     cfg.Server.Mode != "release",
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := stopSync(shutdownCtx); err != nil {
		logger.Warn("catalog sync did not drain", zap.Error(err))
	}
}

// logSyncResults 读取 n 条同步结果并汇总
func logSyncResults(ctx context.Context, results <-chan service.SyncResult, n int) {
	synced, failed := 0, 0
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return
		case r := <-results:
			if !r.OK {
				failed++
				logger.Warn("catalog post sync failed", zap.String("slug", r.Slug))
				continue
			}
			synced++
			logger.Debug("catalog post synced", zap.String("slug", r.Slug), zap.Duration("latency", r.Latency))
		}
	}
	logger.Info("catalog sync finished", zap.Int("synced", synced), zap.Int("failed", failed))
}
