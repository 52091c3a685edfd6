package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*model.Post)
	return list, args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, id string, patch model.PostPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) UpsertBySlug(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *MockPostRepository) ListByCategory(ctx context.Context, category string) ([]*model.Post, error) {
	args := m.Called(ctx, category)
	list, _ := args.Get(0).([]*model.Post)
	return list, args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, term string) ([]*model.Post, error) {
	args := m.Called(ctx, term)
	list, _ := args.Get(0).([]*model.Post)
	return list, args.Error(1)
}

func (m *MockPostRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ListTypesByPost(ctx context.Context, postID string) ([]model.InteractionType, error) {
	args := m.Called(ctx, postID)
	types, _ := args.Get(0).([]model.InteractionType)
	return types, args.Error(1)
}

func (m *MockInteractionRepository) Create(ctx context.Context, postID string, typ model.InteractionType, visitor *string) error {
	return m.Called(ctx, postID, typ, visitor).Error(0)
}

func (m *MockInteractionRepository) ExistsForVisitor(ctx context.Context, postID, visitor string) (bool, error) {
	args := m.Called(ctx, postID, visitor)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) DeleteByPost(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}
