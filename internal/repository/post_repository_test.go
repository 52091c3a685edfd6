package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/testutil"
)

func newPost(slug string, date time.Time) *model.Post {
	return &model.Post{
		ID:         uuid.New().String(),
		Title:      "Title " + slug,
		Slug:       slug,
		Excerpt:    "Excerpt " + slug,
		Content:    "# " + slug,
		CoverImage: "https://img.example.com/" + slug + ".jpg",
		Category:   "Career Development",
		AuthorName: "Emma",
		Date:       date,
	}
}

func TestPostRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	older := newPost("older", now.Add(-2*time.Hour))
	newer := newPost("newer", now.Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	t.Run("List orders by date desc", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)
	})

	t.Run("GetByID and GetBySlug", func(t *testing.T) {
		p, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "older", p.Slug)

		p, err = repo.GetBySlug(ctx, "newer")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, p.ID)

		_, err = repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, older.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate slug rejected", func(t *testing.T) {
		dup := newPost("older", now)
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("sparse update keeps other fields", func(t *testing.T) {
		title := "New"
		require.NoError(t, repo.Update(ctx, older.ID, model.PostPatch{Title: &title}))

		p, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", p.Title)
		assert.Equal(t, older.Excerpt, p.Excerpt)
		assert.Equal(t, older.Slug, p.Slug)
	})

	t.Run("update missing post", func(t *testing.T) {
		title := "x"
		err := repo.Update(ctx, uuid.New().String(), model.PostPatch{Title: &title})
		assert.ErrorIs(t, err, ErrPostNotFound)
		assert.ErrorIs(t, repo.Update(ctx, uuid.New().String(), model.PostPatch{}), ErrPostNotFound)
		assert.NoError(t, repo.Update(ctx, older.ID, model.PostPatch{}))
	})
}

func TestPostRepository_UpsertBySlug(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := newPost("hello-world", time.Now().UTC())
	stored, err := repo.UpsertBySlug(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)

	second := newPost("hello-world", time.Now().UTC())
	second.Title = "Updated"
	stored, err = repo.UpsertBySlug(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID, "id is immutable")
	assert.Equal(t, "Updated", stored.Title)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Updated", list[0].Title)
}

func TestPostRepository_DeleteLeavesOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	interactions := NewInteractionRepository(db)
	ctx := context.Background()

	p := newPost("doomed", time.Now().UTC())
	require.NoError(t, posts.Create(ctx, p))
	_, err := comments.Create(ctx, p.ID, "Ann", "hi")
	require.NoError(t, err)
	require.NoError(t, interactions.Create(ctx, p.ID, model.InteractionLike, nil))

	require.NoError(t, posts.Delete(ctx, p.ID))

	_, err = posts.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	left, err := comments.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1, "plain delete does not cascade")
	types, err := interactions.ListTypesByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, types, 1)

	// deleting again is a no-op
	assert.NoError(t, posts.Delete(ctx, p.ID))
}

func TestPostRepository_DeleteCascade(t *testing.T) {
	db := testutil.NewDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	interactions := NewInteractionRepository(db)
	ctx := context.Background()

	p := newPost("cascade", time.Now().UTC())
	keep := newPost("keep", time.Now().UTC())
	require.NoError(t, posts.Create(ctx, p))
	require.NoError(t, posts.Create(ctx, keep))
	_, err := comments.Create(ctx, p.ID, "Ann", "hi")
	require.NoError(t, err)
	_, err = comments.Create(ctx, keep.ID, "Bob", "stay")
	require.NoError(t, err)
	require.NoError(t, interactions.Create(ctx, p.ID, model.InteractionLove, nil))

	require.NoError(t, posts.DeleteCascade(ctx, p.ID))

	left, err := comments.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	types, err := interactions.ListTypesByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, types)

	left, err = comments.ListByPost(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestPostRepository_Filters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	a := newPost("remote-work", now)
	a.Title = "Mastering Remote Work"
	a.Category = "Remote Work"
	b := newPost("freelance", now.Add(-time.Hour))
	b.Title = "Freelance Guide"
	b.Category = "Freelancing"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	res, err := repo.ListByCategory(ctx, "remote work")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, a.ID, res[0].ID)

	res, err = repo.Search(ctx, "GUIDE")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.ID, res[0].ID)

	res, err = repo.Search(ctx, "freelanc")
	require.NoError(t, err)
	assert.Len(t, res, 1)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Freelancing", "Remote Work"}, cats)
}
