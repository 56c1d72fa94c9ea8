package product

import (
	"encoding/json"
	"fmt"
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CreateProductV1 creates a product from a multipart form.
// Dynamic fields come either as a json object in dynamicFields or as dynamicFields[key] fields.
func (h *HandlerV1) CreateProductV1(w http.ResponseWriter, r *http.Request) {
	form, err := httpx.ParseForm(r)
	if err != nil {
		h.logger.Warn("invalid create product form", "error", err)
		httpx.WriteError(w, h.logger, httpx.FormError(err))
		return
	}
	defer form.Close()

	input, resErr, ok := createInput(form)
	if !ok {
		httpx.WriteError(w, h.logger, resErr)
		return
	}

	files, err := form.Files("files")
	if err != nil {
		h.logger.Error("error opening uploaded files", "error", err)
		httpx.WriteError(w, h.logger, domain.InternalServerError("Failed to read uploaded files"))
		return
	}
	input.Files = files

	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.productService.CreateProduct(r.Context(), input, lang))
}

func createInput(form *httpx.Form) (domain.CreateProductInput, domain.ResultError, bool) {
	input := domain.CreateProductInput{
		CategoryID:   strings.TrimSpace(form.Value("categoryId")),
		Title:        strings.TrimSpace(form.Value("title")),
		Description:  form.Value("description"),
		Location:     form.Value("location"),
		ContactPhone: form.Value("contactPhone"),
	}

	if raw := strings.TrimSpace(form.Value("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return input, domain.BadRequest(fmt.Sprintf("Invalid price: %s", raw)), false
		}
		input.Price = price
	}

	if raw := strings.TrimSpace(form.Value("isAiGenerated")); raw != "" {
		flag, err := strconv.ParseBool(raw)
		if err != nil {
			return input, domain.BadRequest(fmt.Sprintf("Invalid isAiGenerated: %s", raw)), false
		}
		input.IsAIGenerated = flag
	}

	dynamic := map[string]string{}
	if raw := strings.TrimSpace(form.Value("dynamicFields")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &dynamic); err != nil {
			return input, domain.BadRequest("Invalid dynamicFields: expected a json object of strings"), false
		}
	}
	for key, values := range form.Values() {
		name, found := strings.CutPrefix(key, "dynamicFields[")
		if !found || !strings.HasSuffix(name, "]") || len(values) == 0 {
			continue
		}
		dynamic[strings.TrimSuffix(name, "]")] = values[0]
	}
	input.DynamicFields = dynamic

	return input, domain.NoError(), true
}
