package media

import (
	"context"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
	"strings"
)

// Exists answers false for empty or out of root paths instead of failing
func (s *mediaService) Exists(ctx context.Context, relativePath string) domain.Result[bool] {
	if strings.TrimSpace(relativePath) == "" {
		return domain.Success(false)
	}

	key, ok := s.policy.Contains(relativePath)
	if !ok {
		s.logger.Warn("exists check outside upload root", "path", relativePath)
		return domain.Success(false)
	}

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		op := service.Start(s.logger, "Exists", "path", key)
		return domain.Failure[bool](op.Fail(domain.InternalServerError("Failed to check file existence"), err))
	}

	return domain.Success(exists)
}
