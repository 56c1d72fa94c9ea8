package port

import (
	"context"
	"io"
	"somon-ai/internal/core/domain"
)

// MediaStore is an interface to define blob storage interactions, keys are slash separated relative paths
type MediaStore interface {
	EnsureDir(ctx context.Context, dir string) error
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MediaService is an interface to define media upload service
type MediaService interface {
	UploadImage(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome]
	UploadVideo(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome]
	Upload(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome]
	UploadMany(ctx context.Context, files []*domain.FileUpload) []domain.UploadItemOutcome
	Delete(ctx context.Context, relativePath string) domain.Result[bool]
	DeleteMany(ctx context.Context, relativePaths []string) []domain.DeleteItemOutcome
	Exists(ctx context.Context, relativePath string) domain.Result[bool]
	Get(ctx context.Context, relativePath string) domain.Result[domain.StoredFile]
}
