package category

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

func (s *categoryService) GetCategory(ctx context.Context, id string, lang domain.Language) domain.Result[domain.CategoryView] {
	op := service.Start(s.logger, "GetCategory", "id", id, "language", lang.Code())

	if !domain.ValidID(id) {
		return domain.Failure[domain.CategoryView](op.Fail(domain.BadRequest(fmt.Sprintf("Invalid category ID format: %s", id)), nil))
	}

	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) || (err == nil && !c.IsActive) {
		return domain.Failure[domain.CategoryView](op.Fail(domain.NotFound(fmt.Sprintf("Category with ID '%s' not found", id)), nil))
	}
	if err != nil {
		return domain.Failure[domain.CategoryView](op.Fail(domain.InternalServerError("Database error while retrieving category"), err))
	}

	op.Done("slug", c.Slug)
	return domain.Success(c.Localize(lang))
}
