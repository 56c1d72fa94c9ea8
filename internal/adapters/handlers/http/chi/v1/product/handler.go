package product

import (
	"log/slog"
	"somon-ai/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 products routes
type HandlerV1 struct {
	productService port.ProductService
	logger         *slog.Logger
}

// NewProductHandlerV1 creates HandlerV1
func NewProductHandlerV1(service port.ProductService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		productService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListProductsV1)
	router.Post("/", h.CreateProductV1)
	router.Get("/{id}", h.GetProductV1)
	router.Delete("/{id}", h.DeleteProductV1)

	return router
}
