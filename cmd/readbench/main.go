package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/catalog"
	"github.com/d60-Lab/gin-blog/internal/identity"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/database"
)

// readbench 对比文章详情与反应计数在无缓存、Redis 缓存下的读延迟。
// 环境变量：N 请求数（默认 5000），BLOG_* 同服务端配置。
func main() {
	ctx := context.Background()
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)

	n := 5000
	if s := os.Getenv("N"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			n = v
		}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err))
	}

	cat := must(catalog.Default())
	posts := repository.NewPostRepository(db)
	legacy := repository.NewLegacyIDRepository(db)
	resolver := identity.NewResolver(legacy)

	seed := service.NewPostService(posts, legacy, resolver, nil, cat, cfg.Store.Timeout)
	synced, failed := seed.SyncCatalog(ctx)
	fmt.Printf("Catalog synced: %d ok, %d failed\n", synced, failed)

	slugs := make([]string, 0, len(cat.All()))
	for _, p := range cat.All() {
		slugs = append(slugs, p.Slug)
	}
	reqs := makeRequests(slugs, n)

	redisStore := cache.NewRedisStore(client, cfg.Cache.TTL)
	scenarios := []struct {
		name  string
		store cache.Store
		warm  bool
	}{
		{"No cache", cache.Noop{}, false},
		{"Redis cold", redisStore, false},
		{"Redis warm", redisStore, true},
	}

	fmt.Printf("\nPost detail latency (%d req across %d posts)\n", n, len(slugs))
	for _, sc := range scenarios {
		svc := service.NewPostService(posts, legacy, resolver, sc.store, cat, cfg.Store.Timeout)
		res := runScenario(ctx, client, reqs, sc.warm, func(ctx context.Context, slug string) bool {
			return svc.GetBySlug(ctx, slug) != nil
		})
		printResult(sc.name, res)
	}

	engagement := func(store cache.Store) *service.EngagementService {
		return service.NewEngagementService(posts, repository.NewCommentRepository(db), repository.NewInteractionRepository(db),
			resolver, store, cfg.Store.Timeout)
	}
	ids := make([]string, 0, len(cat.All()))
	for _, p := range cat.All() {
		ids = append(ids, p.ID)
	}
	countReqs := makeRequests(ids, n)

	fmt.Printf("\nReaction count latency (%d req)\n", n)
	for _, sc := range scenarios {
		svc := engagement(sc.store)
		res := runScenario(ctx, client, countReqs, sc.warm, func(ctx context.Context, id string) bool {
			return len(svc.CountInteractions(ctx, id)) == len(model.InteractionTypes)
		})
		printResult(sc.name, res)
	}
}

type scenarioResult struct {
	durations   []time.Duration
	misses      int
	cacheKeys   int
	memoryBytes int64
}

func runScenario(ctx context.Context, client *redis.Client, reqs []string, warm bool, call func(context.Context, string) bool) scenarioResult {
	client.FlushDB(ctx)

	if warm {
		fmt.Print("  Warming cache...")
		for _, r := range reqs {
			call(ctx, r)
		}
		fmt.Println(" done")
	}

	out := make([]time.Duration, 0, len(reqs))
	misses := 0
	for _, r := range reqs {
		start := time.Now()
		if !call(ctx, r) {
			misses++
		}
		out = append(out, time.Since(start))
	}

	keys, _ := client.DBSize(ctx).Result()
	var mem int64
	if info, err := client.Info(ctx, "memory").Result(); err == nil {
		mem = parseRedisMemory(info)
	}
	return scenarioResult{durations: out, misses: misses, cacheKeys: int(keys), memoryBytes: mem}
}

func printResult(name string, r scenarioResult) {
	fmt.Printf("%-12s avg=%v p95=%v p99=%v misses=%d cache_keys=%d mem=%s\n",
		name, avg(r.durations), pct(r.durations, 0.95), pct(r.durations, 0.99),
		r.misses, r.cacheKeys, formatBytes(r.memoryBytes))
}

// parseRedisMemory 从 INFO memory 中取 used_memory
func parseRedisMemory(info string) int64 {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "used_memory:"); ok {
			n, _ := strconv.ParseInt(v, 10, 64)
			return n
		}
	}
	return 0
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// makeRequests 热门文章占大头：前两篇约 60% 的请求
func makeRequests(keys []string, n int) []string {
	out := make([]string, n)
	rnd := rand.New(rand.NewSource(42))
	for i := range out {
		if rnd.Float64() < 0.6 && len(keys) > 1 {
			out[i] = keys[rnd.Intn(2)]
			continue
		}
		out[i] = keys[rnd.Intn(len(keys))]
	}
	return out
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
