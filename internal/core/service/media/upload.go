package media

import (
	"context"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"

	"github.com/google/uuid"
)

func (s *mediaService) UploadImage(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	return s.upload(ctx, "UploadImage", file, domain.MediaKindImage)
}

func (s *mediaService) UploadVideo(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	return s.upload(ctx, "UploadVideo", file, domain.MediaKindVideo)
}

// Upload detects the kind of file from its extension before storing it
func (s *mediaService) Upload(ctx context.Context, file *domain.FileUpload) domain.Result[domain.FileUploadOutcome] {
	if file == nil || file.Size == 0 {
		return domain.Failure[domain.FileUploadOutcome](domain.BadRequest("File is empty"))
	}

	kind := s.policy.Detect(file.FileName)
	if kind == domain.MediaKindUnknown {
		op := service.Start(s.logger, "Upload", "file_name", file.FileName)
		return domain.Failure[domain.FileUploadOutcome](op.Fail(
			domain.UnsupportedMediaType(fmt.Sprintf("Unsupported file type: %s", domain.Extension(file.FileName))), nil,
		))
	}

	return s.upload(ctx, "Upload", file, kind)
}

func (s *mediaService) upload(ctx context.Context, name string, file *domain.FileUpload, kind domain.MediaKind) domain.Result[domain.FileUploadOutcome] {
	op := service.Start(s.logger, name, "kind", kind)

	if validation := s.policy.Validate(file, kind); !validation.IsSuccess() {
		return domain.Failure[domain.FileUploadOutcome](op.Fail(validation.Err(), nil))
	}

	storedName := uuid.NewString() + domain.Extension(file.FileName)
	key := s.policy.Dir(kind) + "/" + storedName
	mimeType := domain.MimeType(file.FileName, file.ContentType)

	if err := s.store.Save(ctx, key, file.Content, file.Size, mimeType); err != nil {
		return domain.Failure[domain.FileUploadOutcome](op.Fail(
			domain.InternalServerError(fmt.Sprintf("Failed to save %s file", kind)), err,
		))
	}

	outcome := domain.FileUploadOutcome{
		StoredName:   storedName,
		RelativePath: key,
		PublicURL:    domain.PublicURL(key),
		SizeBytes:    file.Size,
		MimeType:     mimeType,
		MediaKind:    kind,
		UploadedAt:   s.now(),
	}

	op.Done("original_name", file.FileName, "path", key, "size_bytes", file.Size)
	return domain.Success(outcome)
}

// UploadMany uploads every file independently, one failure does not stop the others
func (s *mediaService) UploadMany(ctx context.Context, files []*domain.FileUpload) []domain.UploadItemOutcome {
	outcomes := make([]domain.UploadItemOutcome, 0, len(files))
	for _, file := range files {
		item := domain.UploadItemOutcome{Result: s.Upload(ctx, file)}
		if file != nil {
			item.FileName = file.FileName
		}
		outcomes = append(outcomes, item)
	}
	return outcomes
}
