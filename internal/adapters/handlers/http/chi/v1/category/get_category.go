package category

import (
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

func (h *HandlerV1) GetCategoryV1(w http.ResponseWriter, r *http.Request) {
	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.categoryService.GetCategory(r.Context(), chi.URLParam(r, "id"), lang))
}

func (h *HandlerV1) GetCategoryBySlugV1(w http.ResponseWriter, r *http.Request) {
	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.categoryService.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"), lang))
}

// GetCategoryDetailV1 returns every language variant of a category
func (h *HandlerV1) GetCategoryDetailV1(w http.ResponseWriter, r *http.Request) {
	httpx.Write(w, h.logger, h.categoryService.GetCategoryDetail(r.Context(), chi.URLParam(r, "id")))
}
