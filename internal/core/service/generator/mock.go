package generator

import (
	"context"
	"somon-ai/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockGeneratorService is a mock implementation of GeneratorService
type MockGeneratorService struct {
	mock.Mock
}

func NewMockGeneratorService() *MockGeneratorService {
	return &MockGeneratorService{}
}

func (m *MockGeneratorService) Generate(ctx context.Context, req domain.GenerateRequest, lang domain.Language) domain.Result[domain.GenerateResponse] {
	args := m.Called(ctx, req, lang)
	return args.Get(0).(domain.Result[domain.GenerateResponse])
}

// MockGenerativeClient is a mock implementation of GenerativeClient
type MockGenerativeClient struct {
	mock.Mock
}

func NewMockGenerativeClient() *MockGenerativeClient {
	return &MockGenerativeClient{}
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, prompt string, media []domain.InlineMedia) (string, error) {
	args := m.Called(ctx, prompt, media)
	return args.String(0), args.Error(1)
}
