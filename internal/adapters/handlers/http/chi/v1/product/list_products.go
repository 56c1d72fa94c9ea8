package product

import (
	"fmt"
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"
	"strconv"
)

// ListProductsV1 lists published products, query: categoryId, skip, take
func (h *HandlerV1) ListProductsV1(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, err := intParam(query.Get("skip"), 0)
	if err != nil {
		httpx.WriteError(w, h.logger, domain.BadRequest(fmt.Sprintf("Invalid skip: %s", query.Get("skip"))))
		return
	}
	take, err := intParam(query.Get("take"), domain.DefaultProductPageSize)
	if err != nil {
		httpx.WriteError(w, h.logger, domain.BadRequest(fmt.Sprintf("Invalid take: %s", query.Get("take"))))
		return
	}

	filter := domain.ProductFilter{
		CategoryID: query.Get("categoryId"),
		Skip:       skip,
		Take:       take,
	}
	httpx.Write(w, h.logger, h.productService.ListProducts(r.Context(), filter))
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
