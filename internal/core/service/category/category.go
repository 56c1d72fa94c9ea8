package category

import (
	"log/slog"
	"somon-ai/internal/core/port"
)

type categoryService struct {
	repo   port.CategoryRepository
	logger *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo port.CategoryRepository, logger *slog.Logger) port.CategoryService {
	return &categoryService{repo: repo, logger: logger}
}
