package product

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
)

// DeleteProduct removes the files of the product then the product itself.
// File failures are logged and do not stop the deletion.
func (s *productService) DeleteProduct(ctx context.Context, id string) domain.Result[bool] {
	op := service.Start(s.logger, "DeleteProduct", "id", id)

	if !domain.ValidID(id) {
		return domain.FailureWithValue(op.Fail(domain.BadRequest(fmt.Sprintf("Invalid product ID format: %s", id)), nil), false)
	}

	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.FailureWithValue(op.Fail(domain.NotFound(fmt.Sprintf("Product with ID '%s' not found", id)), nil), false)
	}
	if err != nil {
		return domain.FailureWithValue(op.Fail(domain.InternalServerError("Database error while deleting product"), err), false)
	}

	if len(p.Files) > 0 {
		paths := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			paths = append(paths, f.FilePath)
		}
		for _, outcome := range s.media.DeleteMany(ctx, paths) {
			if !outcome.Result.IsSuccess() {
				op.Warn("file not deleted", "path", outcome.Path, "reason", outcome.Result.Err().Message)
			}
		}
	}

	err = s.products.Delete(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.FailureWithValue(op.Fail(domain.NotFound(fmt.Sprintf("Product with ID '%s' not found", id)), nil), false)
	}
	if err != nil {
		return domain.FailureWithValue(op.Fail(domain.InternalServerError("Database error while deleting product"), err), false)
	}

	s.publish(ctx, domain.EventTypeProductDeleted, p)

	op.Done("files", len(p.Files))
	return domain.Success(true)
}
