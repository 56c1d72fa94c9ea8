package product

import (
	"context"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

// ListProducts returns a page of published products, newest first
func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter) domain.Result[[]domain.ProductListItem] {
	filter = filter.Normalize()
	op := service.Start(s.logger, "ListProducts",
		"category_id", filter.CategoryID, "skip", filter.Skip, "take", filter.Take)

	if filter.CategoryID != "" && !domain.ValidID(filter.CategoryID) {
		return domain.Failure[[]domain.ProductListItem](op.Fail(domain.BadRequest(fmt.Sprintf("Invalid category ID format: %s", filter.CategoryID)), nil))
	}

	products, err := s.products.ListPublished(ctx, filter)
	if err != nil {
		return domain.Failure[[]domain.ProductListItem](op.Fail(domain.InternalServerError("Database error while retrieving products"), err))
	}

	items := make([]domain.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, p.ListItem())
	}

	op.Done("count", len(items))
	return domain.Success(items)
}
