package product

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service"
	"strings"
)

// CreateProduct stores the files then the product, which is published immediately.
// Files that cannot be stored are skipped.
func (s *productService) CreateProduct(ctx context.Context, input domain.CreateProductInput, lang domain.Language) domain.Result[domain.ProductDetail] {
	op := service.Start(s.logger, "CreateProduct", "title", input.Title, "category_id", input.CategoryID)

	if !domain.ValidID(input.CategoryID) {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.BadRequest(fmt.Sprintf("Invalid category ID format: %s", input.CategoryID)), nil))
	}
	if strings.TrimSpace(input.Title) == "" {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.BadRequest("Product title cannot be empty"), nil))
	}
	if input.Price.IsNegative() {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.BadRequest("Product price cannot be negative"), nil))
	}

	c, err := s.categories.FindByID(ctx, input.CategoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) || (err == nil && !c.IsActive) {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.NotFound(fmt.Sprintf("Category with ID '%s' not found", input.CategoryID)), nil))
	}
	if err != nil {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.InternalServerError("Database error while creating product"), err))
	}

	files := s.uploadFiles(ctx, op, input.Files)

	now := s.now()
	p := &domain.Product{
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		Status:        domain.ProductStatusPublished,
		Files:         files,
		DynamicFields: input.DynamicFields,
		Location:      input.Location,
		ContactPhone:  input.ContactPhone,
		IsAIGenerated: input.IsAIGenerated,
		CreatedAt:     now,
		UpdatedAt:     now,
		PublishedAt:   &now,
	}
	if p.DynamicFields == nil {
		p.DynamicFields = map[string]string{}
	}

	if err := s.products.Create(ctx, p); err != nil {
		return domain.Failure[domain.ProductDetail](op.Fail(domain.InternalServerError("Database error while creating product"), err))
	}

	s.publish(ctx, domain.EventTypeProductCreated, p)

	op.Done("id", p.ID, "files", len(files))
	return domain.Success(p.Detail(c.Name.Get(lang)))
}

// uploadFiles keeps the successful items of the batch upload, display order follows the stored files
func (s *productService) uploadFiles(ctx context.Context, op *service.Operation, uploads []*domain.FileUpload) []domain.ProductFile {
	if len(uploads) == 0 {
		return []domain.ProductFile{}
	}

	outcomes := s.media.UploadMany(ctx, uploads)
	files := make([]domain.ProductFile, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Result.IsSuccess() {
			op.Warn("file skipped", "file_name", o.FileName, "reason", o.Result.Err().Message)
			continue
		}

		stored := o.Result.Value()
		files = append(files, domain.ProductFile{
			FileName:      stored.StoredName,
			FilePath:      stored.RelativePath,
			FileSizeBytes: stored.SizeBytes,
			MimeType:      stored.MimeType,
			FileType:      stored.MediaKind,
			DisplayOrder:  len(files),
			UploadedAt:    stored.UploadedAt,
		})
	}
	op.Info("files uploaded", "stored", len(files), "received", len(uploads))
	return files
}
