package product

import (
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

func (h *HandlerV1) GetProductV1(w http.ResponseWriter, r *http.Request) {
	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.productService.GetProduct(r.Context(), chi.URLParam(r, "id"), lang))
}

func (h *HandlerV1) DeleteProductV1(w http.ResponseWriter, r *http.Request) {
	httpx.Write(w, h.logger, h.productService.DeleteProduct(r.Context(), chi.URLParam(r, "id")))
}
