package port

import (
	"context"
	"somon-ai/internal/core/domain"
)

// ProductRepository is an interface to define product repository interactions
type ProductRepository interface {
	ListPublished(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
}

// ProductService is an interface to define product service
type ProductService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) domain.Result[[]domain.ProductListItem]
	GetProduct(ctx context.Context, id string, lang domain.Language) domain.Result[domain.ProductDetail]
	CreateProduct(ctx context.Context, input domain.CreateProductInput, lang domain.Language) domain.Result[domain.ProductDetail]
	DeleteProduct(ctx context.Context, id string) domain.Result[bool]
}
