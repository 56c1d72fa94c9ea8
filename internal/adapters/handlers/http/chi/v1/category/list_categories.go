package category

import (
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"
)

// ListCategoriesV1 lists the active categories in the request language
func (h *HandlerV1) ListCategoriesV1(w http.ResponseWriter, r *http.Request) {
	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.categoryService.ListCategories(r.Context(), lang))
}
