package category

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
	"strings"
)

// GetCategoryBySlug looks the slug up case-insensitively
func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string, lang domain.Language) domain.Result[domain.CategoryView] {
	op := service.Start(s.logger, "GetCategoryBySlug", "slug", slug, "language", lang.Code())

	normalized := strings.ToLower(strings.TrimSpace(slug))
	if normalized == "" {
		return domain.Failure[domain.CategoryView](op.Fail(domain.BadRequest("Category slug cannot be empty"), nil))
	}

	c, err := s.repo.FindBySlug(ctx, normalized)
	if errors.Is(err, domain.ErrCategoryNotFound) || (err == nil && !c.IsActive) {
		return domain.Failure[domain.CategoryView](op.Fail(domain.NotFound(fmt.Sprintf("Category '%s' not found", slug)), nil))
	}
	if err != nil {
		return domain.Failure[domain.CategoryView](op.Fail(domain.InternalServerError("Database error while retrieving category"), err))
	}

	op.Done("id", c.ID)
	return domain.Success(c.Localize(lang))
}
