package category

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

// GetCategoryDetail returns every language variant, inactive categories included
func (s *categoryService) GetCategoryDetail(ctx context.Context, id string) domain.Result[domain.CategoryDetail] {
	op := service.Start(s.logger, "GetCategoryDetail", "id", id)

	if !domain.ValidID(id) {
		return domain.Failure[domain.CategoryDetail](op.Fail(domain.BadRequest(fmt.Sprintf("Invalid category ID format: %s", id)), nil))
	}

	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.Failure[domain.CategoryDetail](op.Fail(domain.NotFound(fmt.Sprintf("Category with ID '%s' not found", id)), nil))
	}
	if err != nil {
		return domain.Failure[domain.CategoryDetail](op.Fail(domain.InternalServerError("Database error while retrieving category details"), err))
	}

	op.Done("slug", c.Slug)
	return domain.Success(c.Detail())
}
