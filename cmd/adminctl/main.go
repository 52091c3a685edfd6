package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/auth"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// adminctl 创建或更新管理员账号：
//
//	adminctl -username emma -password '...' [-admin=false]
//
// 密码也可以通过 BLOG_ADMIN_PASSWORD 传入。
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", os.Getenv("BLOG_ADMIN_PASSWORD"), "admin password")
	isAdmin := flag.Bool("admin", true, "grant blog admin privilege")
	flag.Parse()

	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)

	svc := service.NewAdminService(repository.NewAdminRepository(db),
		auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL), cfg.Store.Timeout)
	u, err := svc.EnsureAdmin(context.Background(), *username, *password, *isAdmin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}
	fmt.Printf("admin user %s (%s) is_admin=%t\n", u.Username, u.ID, u.IsAdmin)
}
