package media

import (
	"io"
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
	"strconv"
)

// ServeFileV1 streams a stored file, the request path is its public url
func (h *HandlerV1) ServeFileV1(w http.ResponseWriter, r *http.Request) {
	result := h.mediaService.Get(r.Context(), r.URL.Path)
	if !result.IsSuccess() {
		httpx.WriteError(w, h.logger, result.Err())
		return
	}

	file := result.Value()
	defer file.Content.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, file.Content); err != nil {
		h.logger.Warn("error streaming file", "file_name", file.FileName, "error", err)
	}
}

