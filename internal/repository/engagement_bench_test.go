package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/testutil"
)

func BenchmarkInteractionWrite_OnePerVisitor(b *testing.B) {
	db := testutil.NewDB(b)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	// 预创建文章
	posts := make([]string, 100)
	for i := range posts {
		posts[i] = uuid.NewString()
	}

	rnd := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor := fmt.Sprintf("v%05d", rnd.Intn(10000))
		typ := model.InteractionTypes[rnd.Intn(len(model.InteractionTypes))]
		_ = repo.Create(ctx, posts[rnd.Intn(len(posts))], typ, &visitor)
	}
}

func BenchmarkListCommentsAndCountInteractions(b *testing.B) {
	db := testutil.NewDB(b)
	comments := NewCommentRepository(db)
	interactions := NewInteractionRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	// 构造：一篇文章有 N 条评论和 N 个反应
	const N = 2000
	p := newPost("hot-post", time.Now().UTC())
	if err := posts.Create(ctx, p); err != nil {
		b.Fatalf("seed post: %v", err)
	}
	for i := 0; i < N; i++ {
		if _, err := comments.Create(ctx, p.ID, fmt.Sprintf("reader %d", i), "nice"); err != nil {
			b.Fatalf("seed comment: %v", err)
		}
		visitor := fmt.Sprintf("v%d", i)
		_ = interactions.Create(ctx, p.ID, model.InteractionTypes[i%len(model.InteractionTypes)], &visitor)
	}

	b.ResetTimer()
	b.Run("ListByPost", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = comments.ListByPost(ctx, p.ID)
		}
	})

	b.Run("ListTypesByPost", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = interactions.ListTypesByPost(ctx, p.ID)
		}
	})

	b.Run("GetBySlug", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = posts.GetBySlug(ctx, p.Slug)
		}
	})
}
