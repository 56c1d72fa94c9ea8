package port

import (
	"context"
	"somon-ai/internal/core/domain"
)

// CategoryRepository is an interface to define category repository interactions
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CategoryService is an interface to define category service
type CategoryService interface {
	ListCategories(ctx context.Context, lang domain.Language) domain.Result[[]domain.CategoryView]
	GetCategory(ctx context.Context, id string, lang domain.Language) domain.Result[domain.CategoryView]
	GetCategoryBySlug(ctx context.Context, slug string, lang domain.Language) domain.Result[domain.CategoryView]
	GetCategoryDetail(ctx context.Context, id string) domain.Result[domain.CategoryDetail]
}
