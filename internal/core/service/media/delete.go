package media

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

func (s *mediaService) Delete(ctx context.Context, relativePath string) domain.Result[bool] {
	op := service.Start(s.logger, "Delete", "path", relativePath)

	key, resErr, ok := s.resolve(relativePath)
	if !ok {
		return domain.FailureWithValue(op.Fail(resErr, nil), false)
	}

	err := s.store.Delete(ctx, key)
	switch {
	case errors.Is(err, domain.ErrObjectNotFound):
		return domain.FailureWithValue(op.Fail(domain.NotFound(fmt.Sprintf("File not found: %s", relativePath)), nil), false)
	case errors.Is(err, domain.ErrObjectForbidden):
		return domain.FailureWithValue(op.Fail(domain.Forbidden("Access denied to delete file"), err), false)
	case errors.Is(err, domain.ErrObjectBusy):
		return domain.FailureWithValue(op.Fail(domain.InternalServerError("File is in use or locked"), err), false)
	case err != nil:
		return domain.FailureWithValue(op.Fail(domain.InternalServerError("Failed to delete file"), err), false)
	}

	op.Done("path", key)
	return domain.Success(true)
}

// DeleteMany deletes every path independently, one failure does not stop the others
func (s *mediaService) DeleteMany(ctx context.Context, relativePaths []string) []domain.DeleteItemOutcome {
	outcomes := make([]domain.DeleteItemOutcome, 0, len(relativePaths))
	for _, p := range relativePaths {
		outcomes = append(outcomes, domain.DeleteItemOutcome{Path: p, Result: s.Delete(ctx, p)})
	}
	return outcomes
}
