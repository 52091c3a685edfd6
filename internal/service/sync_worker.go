package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/catalog"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

type syncJob struct {
	src   catalog.SourcePost
	enqAt time.Time
}

// SyncResult 单条同步结果，Latency 为入队到落库的耗时
type SyncResult struct {
	Slug    string
	OK      bool
	Latency time.Duration
}

// CatalogSyncer 后台同步目录文章的本地队列，启动时用它预热数据库而不阻塞服务启动
type CatalogSyncer struct {
	posts     *PostService
	ch        chan syncJob
	resultsCh chan SyncResult
	wg        sync.WaitGroup
}

func NewCatalogSyncer(posts *PostService, queueSize int) *CatalogSyncer {
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &CatalogSyncer{
		posts:     posts,
		ch:        make(chan syncJob, queueSize),
		resultsCh: make(chan SyncResult, queueSize),
	}
}

// Start 启动 workers 个消费者，返回的函数停止消费并等待队列排空（最多到 ctx 截止）
func (s *CatalogSyncer) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case job := <-s.ch:
					s.run(job)
				case <-stopCh:
					// 处理完剩余任务再退出
					for {
						select {
						case job := <-s.ch:
							s.run(job)
						default:
							return
						}
					}
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *CatalogSyncer) run(job syncJob) {
	ok := s.posts.SyncFromSource(context.Background(), job.src)
	select {
	case s.resultsCh <- SyncResult{Slug: job.src.Slug, OK: ok, Latency: time.Since(job.enqAt)}:
	default:
	}
}

// Enqueue 队列满时丢弃并返回 false
func (s *CatalogSyncer) Enqueue(src catalog.SourcePost) bool {
	select {
	case s.ch <- syncJob{src: src, enqAt: time.Now()}:
		return true
	default:
		logger.Warn("catalog sync queue full, drop", zap.String("slug", src.Slug))
		return false
	}
}

// EnqueueCatalog 入队全部目录文章，返回成功入队的数量
func (s *CatalogSyncer) EnqueueCatalog(cat *catalog.Catalog) int {
	n := 0
	for _, src := range cat.All() {
		if s.Enqueue(src) {
			n++
		}
	}
	return n
}

// Results 每处理一条发送一次结果；没人读时结果被丢弃
func (s *CatalogSyncer) Results() <-chan SyncResult { return s.resultsCh }

// QueueLen 当前队列长度（采样值）
func (s *CatalogSyncer) QueueLen() int { return len(s.ch) }
