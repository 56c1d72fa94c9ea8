package ai

import (
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"somon-ai/internal/core/domain"
)

// GenerateV1 drafts a listing from the "prompt" field and the "files" fields
func (h *HandlerV1) GenerateV1(w http.ResponseWriter, r *http.Request) {
	form, err := httpx.ParseForm(r)
	if err != nil {
		h.logger.Warn("invalid generate form", "error", err)
		httpx.WriteError(w, h.logger, httpx.FormError(err))
		return
	}
	defer form.Close()

	files, err := form.Files("files")
	if err != nil {
		h.logger.Error("error opening uploaded files", "error", err)
		httpx.WriteError(w, h.logger, domain.InternalServerError("Failed to read uploaded files"))
		return
	}

	prompt := form.Value("prompt")
	if prompt == "" {
		prompt = form.Value("clientPrompt")
	}

	req := domain.GenerateRequest{Prompt: prompt, Files: files}
	lang := domain.LanguageFromContext(r.Context())
	httpx.Write(w, h.logger, h.generatorService.Generate(r.Context(), req, lang))
}
