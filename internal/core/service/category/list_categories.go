package category

import (
	"context"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

// ListCategories returns the active categories ordered by display order
func (s *categoryService) ListCategories(ctx context.Context, lang domain.Language) domain.Result[[]domain.CategoryView] {
	op := service.Start(s.logger, "ListCategories", "language", lang.Code())

	categories, err := s.repo.ListActive(ctx)
	if err != nil {
		return domain.Failure[[]domain.CategoryView](op.Fail(domain.InternalServerError("Database error while retrieving categories"), err))
	}
	if len(categories) == 0 {
		op.Warn("no active categories found")
	}

	views := make([]domain.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, c.Localize(lang))
	}

	op.Done("count", len(views))
	return domain.Success(views)
}
