package product

import (
	"context"
	"somon-ai/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

func (m *MockProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) domain.Result[[]domain.ProductListItem] {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.Result[[]domain.ProductListItem])
}

func (m *MockProductService) GetProduct(ctx context.Context, id string, lang domain.Language) domain.Result[domain.ProductDetail] {
	args := m.Called(ctx, id, lang)
	return args.Get(0).(domain.Result[domain.ProductDetail])
}

func (m *MockProductService) CreateProduct(ctx context.Context, input domain.CreateProductInput, lang domain.Language) domain.Result[domain.ProductDetail] {
	args := m.Called(ctx, input, lang)
	return args.Get(0).(domain.Result[domain.ProductDetail])
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) domain.Result[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Result[bool])
}
