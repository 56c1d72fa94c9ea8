package media

import (
	"context"
	"somon-ai/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	mock.Mock
}

// NewMockMediaService creates a new MockMediaService
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

func (m *MockMediaService) UploadImage(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	args := m.Called(ctx, file)
	return args.Get(0).(domain.Result[domain.FileUploadOutcome])
}

func (m *MockMediaService) UploadVideo(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	args := m.Called(ctx, file)
	return args.Get(0).(domain.Result[domain.FileUploadOutcome])
}

func (m *MockMediaService) Upload(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	args := m.Called(ctx, file)
	return args.Get(0).(domain.Result[domain.FileUploadOutcome])
}

func (m *MockMediaService) UploadMany(ctx context.Context, files []*domain.FileUpload) []domain.UploadItemOutcome {
	args := m.Called(ctx, files)
	return args.Get(0).([]domain.UploadItemOutcome)
}

func (m *MockMediaService) Delete(ctx context.Context, relativePath string) domain.Result[bool] {
	args := m.Called(ctx, relativePath)
	return args.Get(0).(domain.Result[bool])
}

func (m *MockMediaService) DeleteMany(ctx context.Context, relativePaths []string) []domain.DeleteItemOutcome {
	args := m.Called(ctx, relativePaths)
	return args.Get(0).([]domain.DeleteItemOutcome)
}

func (m *MockMediaService) Exists(ctx context.Context, relativePath string) domain.Result[bool] {
	args := m.Called(ctx, relativePath)
	return args.Get(0).(domain.Result[bool])
}

func (m *MockMediaService) Get(ctx context.Context, relativePath string) domain.Result[domain.StoredFile] {
	args := m.Called(ctx, relativePath)
	return args.Get(0).(domain.Result[domain.StoredFile])
}
