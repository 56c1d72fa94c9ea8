package product

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

func (s *productService) GetProduct(ctx context.Context, id string, lang domain.Language) domain.Result[domain.ProductDetail] {
	op := service.Start(s.logger, "GetProduct", "id", id, "language", lang.Code())

	if !domain.ValidID(id) {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.BadRequest(fmt.Sprintf("Invalid product ID format: %s", id)), nil))
	}

	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.NotFound(fmt.Sprintf("Product with ID '%s' not found", id)), nil))
	}
	if err != nil {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.InternalServerError("Database error while retrieving product"), err))
	}

	go s.incrementViewCount(context.WithoutCancel(ctx), id)

	op.Done("title", p.Title)
	return domain.Success(p.Detail(s.categoryName(ctx, p.CategoryID, lang)))
}

// incrementViewCount outlives the request, a failure is only logged
func (s *productService) incrementViewCount(ctx context.Context, id string) {
	ctx, cancel := context.WithTimeout(ctx, s.viewCountTimeout)
	defer cancel()

	if err := s.products.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment view count", "product_id", id, "error", err)
	}
}
