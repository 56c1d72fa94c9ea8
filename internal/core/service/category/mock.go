package category

import (
	"context"
	"somon-ai/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	mock.Mock
}

func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{}
}

func (m *MockCategoryService) ListCategories(ctx context.Context, lang domain.Language) domain.Result[[]domain.CategoryView] {
	args := m.Called(ctx, lang)
	return args.Get(0).(domain.Result[[]domain.CategoryView])
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id string, lang domain.Language) domain.Result[domain.CategoryView] {
	args := m.Called(ctx, id, lang)
	return args.Get(0).(domain.Result[domain.CategoryView])
}

func (m *MockCategoryService) GetCategoryBySlug(ctx context.Context, slug string, lang domain.Language) domain.Result[domain.CategoryView] {
	args := m.Called(ctx, slug, lang)
	return args.Get(0).(domain.Result[domain.CategoryView])
}

func (m *MockCategoryService) GetCategoryDetail(ctx context.Context, id string) domain.Result[domain.CategoryDetail] {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Result[domain.CategoryDetail])
}
