package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/catalog"
)

func TestCatalogSyncer(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	f := newPostFixture(t, nil, cat)

	syncer := NewCatalogSyncer(f.svc, 64)
	stop := syncer.Start(2)
	queued := syncer.EnqueueCatalog(cat)
	assert.Equal(t, len(cat.All()), queued)

	seen := map[string]bool{}
	timeout := time.After(10 * time.Second)
	for len(seen) < queued {
		select {
		case r := <-syncer.Results():
			assert.True(t, r.OK, r.Slug)
			seen[r.Slug] = true
		case <-timeout:
			t.Fatalf("synced %d of %d", len(seen), queued)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))
	assert.Len(t, f.svc.GetAll(context.Background()), len(cat.All()))
	assert.Zero(t, syncer.QueueLen())
}

func TestCatalogSyncer_DropsWhenFull(t *testing.T) {
	f := newPostFixture(t, nil, nil)
	syncer := NewCatalogSyncer(f.svc, 1)

	assert.True(t, syncer.Enqueue(helloWorld("1")))
	assert.False(t, syncer.Enqueue(helloWorld("2")))

	stop := syncer.Start(1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))
	assert.Len(t, f.svc.GetAll(context.Background()), 1)
}
