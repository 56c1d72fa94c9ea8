package category

import (
	"log/slog"
	"somon-ai/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 categories routes
type HandlerV1 struct {
	categoryService port.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandlerV1 creates HandlerV1
func NewCategoryHandlerV1(service port.CategoryService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		categoryService: service,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListCategoriesV1)
	router.Get("/slug/{slug}", h.GetCategoryBySlugV1)
	router.Get("/{id}", h.GetCategoryV1)
	router.Get("/{id}/details", h.GetCategoryDetailV1)

	return router
}
