package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/catalog"
	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/database"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// syncposts 把内置目录写入数据库，并记录旧数字 id 到 UUID 的映射。可重复执行。
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := must(database.InitDB(cfg))
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	cat := must(catalog.Default())
	legacy := repository.NewLegacyIDRepository(db)
	svc := service.NewPostService(repository.NewPostRepository(db), legacy, identity.NewResolver(legacy), nil, cat, cfg.Store.Timeout)

	ctx := context.Background()
	synced, failed := svc.SyncCatalog(ctx)

	mappings, err := legacy.List(ctx)
	if err != nil {
		logger.Fatal("list legacy ids", zap.Error(err))
	}
	for _, m := range mappings {
		logger.Info("legacy id", zap.String("legacy_id", m.LegacyID), zap.String("post_id", m.PostID))
	}
	if failed > 0 {
		logger.Error("catalog sync incomplete", zap.Int("synced", synced), zap.Int("failed", failed))
		logger.Sync()
		os.Exit(1)
	}
}
