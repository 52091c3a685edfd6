package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/testutil"
)

func TestRedisStore_Posts(t *testing.T) {
	client, mr := testutil.NewRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	_, ok := store.GetPost(ctx, "hello-world")
	assert.False(t, ok)

	post := &model.Post{ID: "p1", Slug: "hello-world", Title: "Hello", Date: time.Now().UTC().Truncate(time.Second)}
	store.SetPost(ctx, post)

	got, ok := store.GetPost(ctx, "hello-world")
	require.True(t, ok)
	assert.Equal(t, post.Title, got.Title)
	assert.True(t, post.Date.Equal(got.Date))

	mr.FastForward(2 * time.Minute)
	_, ok = store.GetPost(ctx, "hello-world")
	assert.False(t, ok, "entry expires with ttl")

	store.SetPost(ctx, post)
	store.InvalidatePost(ctx, "hello-world")
	_, ok = store.GetPost(ctx, "hello-world")
	assert.False(t, ok)
}

func TestRedisStore_Counts(t *testing.T) {
	client, _ := testutil.NewRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	// 计数未缓存时的增量被丢弃
	applied, err := store.IncrCount(ctx, "p1", model.InteractionLike, 1)
	require.NoError(t, err)
	assert.False(t, applied)
	_, ok := store.GetCounts(ctx, "p1")
	assert.False(t, ok)

	counts := model.NewInteractionCounts()
	counts[model.InteractionLike] = 2
	store.SetCounts(ctx, "p1", counts)

	applied, err = store.IncrCount(ctx, "p1", model.InteractionLove, 1)
	require.NoError(t, err)
	assert.True(t, applied)
	got, ok := store.GetCounts(ctx, "p1")
	require.True(t, ok)
	assert.Equal(t, model.InteractionCounts{
		model.InteractionLike:       2,
		model.InteractionLove:       1,
		model.InteractionInsightful: 0,
		model.InteractionCelebrate:  0,
	}, got)

	_, err = store.IncrCount(ctx, "p1", model.InteractionLove, -1)
	require.NoError(t, err)
	got, _ = store.GetCounts(ctx, "p1")
	assert.EqualValues(t, 0, got[model.InteractionLove])

	store.InvalidateCounts(ctx, "p1")
	_, ok = store.GetCounts(ctx, "p1")
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	var s Store = Noop{}
	ctx := context.Background()
	s.SetPost(ctx, &model.Post{Slug: "x"})
	_, ok := s.GetPost(ctx, "x")
	assert.False(t, ok)
	applied, err := s.IncrCount(ctx, "p", model.InteractionLike, 1)
	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := Open(ctx, config.RedisConfig{Enabled: false}, time.Minute)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, store)
	assert.NoError(t, closeFn())

	_, mr := testutil.NewRedis(t)
	store, closeFn, err = Open(ctx, config.RedisConfig{Enabled: true, Addr: mr.Addr()}, time.Minute)
	require.NoError(t, err)
	defer closeFn()
	store.SetPost(ctx, &model.Post{ID: "p1", Slug: "s"})
	assert.True(t, mr.Exists("post:slug:s"))

	_, _, err = Open(ctx, config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}, time.Minute)
	assert.Error(t, err)
}
