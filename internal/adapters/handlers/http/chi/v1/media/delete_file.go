package media

import (
	"net/http"
	"somon-ai/internal/adapters/handlers/http/chi/httpx"
)

// DeleteFileV1 deletes the file at ?path=
func (h *HandlerV1) DeleteFileV1(w http.ResponseWriter, r *http.Request) {
	httpx.Write(w, h.logger, h.mediaService.Delete(r.Context(), r.URL.Query().Get("path")))
}

// FileExistsV1 reports whether a file exists at ?path=
func (h *HandlerV1) FileExistsV1(w http.ResponseWriter, r *http.Request) {
	httpx.Write(w, h.logger, h.mediaService.Exists(r.Context(), r.URL.Query().Get("path")))
}
