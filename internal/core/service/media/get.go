package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

func (s *mediaService) Get(ctx context.Context, relativePath string) domain.Result[domain.StoredFile] {
	op := service.Start(s.logger, "Get", "path", relativePath)

	key, resErr, ok := s.resolve(relativePath)
	if !ok {
		return domain.Failure[domain.StoredFile](op.Fail(resErr, nil))
	}

	content, size, err := s.store.Open(ctx, key)
	switch {
	case errors.Is(err, domain.ErrObjectNotFound):
		return domain.Failure[domain.StoredFile](op.Fail(domain.NotFound(fmt.Sprintf("File not found: %s", relativePath)), nil))
	case errors.Is(err, domain.ErrObjectForbidden):
		return domain.Failure[domain.StoredFile](op.Fail(domain.Forbidden("Access denied to read file"), err))
	case err != nil:
		return domain.Failure[domain.StoredFile](op.Fail(domain.InternalServerError("Failed to read file"), err))
	}

	op.Done("size_bytes", size)
	return domain.Success(domain.StoredFile{
		Content:     content,
		ContentType: domain.ContentTypeByExtension(key),
		FileName:    path.Base(key),
		SizeBytes:   size,
	})
}
